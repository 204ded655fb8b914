package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// MockCloudFormationClient is a simple mock implementing services.CloudFormationClient
// (and, by the same method set, lib.DeployClient).
type MockCloudFormationClient struct {
	DescribeStacksFunc         func(context.Context, *cloudformation.DescribeStacksInput) (*cloudformation.DescribeStacksOutput, error)
	DescribeStackResourcesFunc func(context.Context, *cloudformation.DescribeStackResourcesInput) (*cloudformation.DescribeStackResourcesOutput, error)
	CreateChangeSetFunc        func(context.Context, *cloudformation.CreateChangeSetInput) (*cloudformation.CreateChangeSetOutput, error)
	ExecuteChangeSetFunc       func(context.Context, *cloudformation.ExecuteChangeSetInput) (*cloudformation.ExecuteChangeSetOutput, error)
	DescribeChangeSetFunc      func(context.Context, *cloudformation.DescribeChangeSetInput) (*cloudformation.DescribeChangeSetOutput, error)
	DescribeStackEventsFunc    func(context.Context, *cloudformation.DescribeStackEventsInput) (*cloudformation.DescribeStackEventsOutput, error)
	DeleteStackFunc            func(context.Context, *cloudformation.DeleteStackInput) (*cloudformation.DeleteStackOutput, error)
	ValidateTemplateFunc       func(context.Context, *cloudformation.ValidateTemplateInput) (*cloudformation.ValidateTemplateOutput, error)
}

func (m *MockCloudFormationClient) DescribeStacks(ctx context.Context, in *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error) {
	if m.DescribeStacksFunc != nil {
		return m.DescribeStacksFunc(ctx, in)
	}
	return &cloudformation.DescribeStacksOutput{}, nil
}

func (m *MockCloudFormationClient) DescribeStackResources(ctx context.Context, in *cloudformation.DescribeStackResourcesInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStackResourcesOutput, error) {
	if m.DescribeStackResourcesFunc != nil {
		return m.DescribeStackResourcesFunc(ctx, in)
	}
	return &cloudformation.DescribeStackResourcesOutput{}, nil
}

func (m *MockCloudFormationClient) CreateChangeSet(ctx context.Context, in *cloudformation.CreateChangeSetInput, optFns ...func(*cloudformation.Options)) (*cloudformation.CreateChangeSetOutput, error) {
	if m.CreateChangeSetFunc != nil {
		return m.CreateChangeSetFunc(ctx, in)
	}
	return &cloudformation.CreateChangeSetOutput{}, nil
}

func (m *MockCloudFormationClient) ExecuteChangeSet(ctx context.Context, in *cloudformation.ExecuteChangeSetInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ExecuteChangeSetOutput, error) {
	if m.ExecuteChangeSetFunc != nil {
		return m.ExecuteChangeSetFunc(ctx, in)
	}
	return &cloudformation.ExecuteChangeSetOutput{}, nil
}

func (m *MockCloudFormationClient) DescribeChangeSet(ctx context.Context, in *cloudformation.DescribeChangeSetInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeChangeSetOutput, error) {
	if m.DescribeChangeSetFunc != nil {
		return m.DescribeChangeSetFunc(ctx, in)
	}
	return &cloudformation.DescribeChangeSetOutput{}, nil
}

func (m *MockCloudFormationClient) DescribeStackEvents(ctx context.Context, in *cloudformation.DescribeStackEventsInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStackEventsOutput, error) {
	if m.DescribeStackEventsFunc != nil {
		return m.DescribeStackEventsFunc(ctx, in)
	}
	return &cloudformation.DescribeStackEventsOutput{}, nil
}

func (m *MockCloudFormationClient) DeleteStack(ctx context.Context, in *cloudformation.DeleteStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DeleteStackOutput, error) {
	if m.DeleteStackFunc != nil {
		return m.DeleteStackFunc(ctx, in)
	}
	return &cloudformation.DeleteStackOutput{}, nil
}

func (m *MockCloudFormationClient) ValidateTemplate(ctx context.Context, in *cloudformation.ValidateTemplateInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ValidateTemplateOutput, error) {
	if m.ValidateTemplateFunc != nil {
		return m.ValidateTemplateFunc(ctx, in)
	}
	return &cloudformation.ValidateTemplateOutput{}, nil
}

// MockS3Client is a simple mock implementing services.S3Client.
type MockS3Client struct {
	PutObjectFunc func(context.Context, *s3.PutObjectInput) (*s3.PutObjectOutput, error)
	GetObjectFunc func(context.Context, *s3.GetObjectInput) (*s3.GetObjectOutput, error)
}

func (m *MockS3Client) PutObject(ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
	if m.PutObjectFunc != nil {
		return m.PutObjectFunc(ctx, in)
	}
	return &s3.PutObjectOutput{}, nil
}

func (m *MockS3Client) GetObject(ctx context.Context, in *s3.GetObjectInput) (*s3.GetObjectOutput, error) {
	if m.GetObjectFunc != nil {
		return m.GetObjectFunc(ctx, in)
	}
	return &s3.GetObjectOutput{}, nil
}
