package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/AccelByte/extend-santa-skill/pkg/state"
)

// fakeS3 keeps objects in memory keyed by bucket/key.
type fakeS3 struct {
	objects map[string][]byte
	getErr  error
	putErr  error
	headErr error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: make(map[string][]byte)}
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	data, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("not found")}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) HeadBucket(ctx context.Context, in *s3.HeadBucketInput, _ ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	if f.headErr != nil {
		return nil, f.headErr
	}
	return &s3.HeadBucketOutput{}, nil
}

func TestS3DocumentStore_SaveAndLoad(t *testing.T) {
	fake := newFakeS3()
	store := NewS3DocumentStore(fake, S3DocumentStoreConfig{Bucket: "skill", Prefix: "docs/"})
	ctx := context.Background()

	doc, err := store.Load(ctx, "user1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc != nil {
		t.Fatalf("Load() = %+v, expected nil for an absent user", doc)
	}

	doc = state.NewDocument()
	state.MarkStoryRead(doc, "rudolph-first-flight")
	if err := store.Save(ctx, "user1", doc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, ok := fake.objects["skill/docs/user1.json"]; !ok {
		t.Fatalf("object key not written, have %v", fake.objects)
	}

	loaded, err := store.Load(ctx, "user1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded.StoriesRead) != 1 || loaded.StoriesRead[0] != "rudolph-first-flight" {
		t.Errorf("StoriesRead = %v", loaded.StoriesRead)
	}
}

func TestS3DocumentStore_Errors(t *testing.T) {
	boom := errors.New("boom")
	fake := newFakeS3()
	store := NewS3DocumentStore(fake, S3DocumentStoreConfig{Bucket: "skill"})
	ctx := context.Background()

	fake.getErr = boom
	if _, err := store.Load(ctx, "user1"); !errors.Is(err, boom) {
		t.Errorf("Load() error = %v, expected %v", err, boom)
	}

	fake.putErr = boom
	if err := store.Save(ctx, "user1", state.NewDocument()); !errors.Is(err, boom) {
		t.Errorf("Save() error = %v, expected %v", err, boom)
	}

	if err := store.Ping(ctx); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
	fake.headErr = boom
	if err := store.Ping(ctx); !errors.Is(err, boom) {
		t.Errorf("Ping() error = %v, expected %v", err, boom)
	}
}
