package db

import (
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/rhythmdex/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	dynamodbiface.DynamoDBAPI
	input *dynamodb.BatchGetItemInput
	items []map[string]*dynamodb.AttributeValue
	err   error
}

func (f *fakeDynamo) BatchGetItem(input *dynamodb.BatchGetItemInput) (*dynamodb.BatchGetItemOutput, error) {
	f.input = input
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.BatchGetItemOutput{
		Responses: map[string][]map[string]*dynamodb.AttributeValue{"meta": f.items},
	}, nil
}

func TestGetMidiMetadatas(t *testing.T) {
	fake := &fakeDynamo{items: []map[string]*dynamodb.AttributeValue{
		{
			"PK":      {S: aws.String("a.mid")},
			"Artist":  {S: aws.String("Someone")},
			"Release": {S: aws.String("Live")},
			"Title":   {S: aws.String("Shuffle")},
			"Year":    {N: aws.String("1987")},
		},
		{
			"PK":    {S: aws.String("b.mid")},
			"Title": {S: aws.String("No Year")},
		},
	}}
	store := NewMetadataStore(fake, "meta")

	res, err := store.GetMidiMetadatas([]string{"a.mid", "b.mid", "c.mid"})
	require.NoError(t, err)
	assert.Equal(t, map[string]model.MidiMetadata{
		"a.mid": {Artist: "Someone", Release: "Live", Title: "Shuffle", Year: 1987},
		"b.mid": {Title: "No Year"},
	}, res)
	assert.Len(t, fake.input.RequestItems["meta"].Keys, 3)
}

func TestGetMidiMetadatasEmpty(t *testing.T) {
	fake := &fakeDynamo{}
	res, err := NewMetadataStore(fake, "meta").GetMidiMetadatas(nil)
	require.NoError(t, err)
	assert.Empty(t, res)
	assert.Nil(t, fake.input)
}

func TestGetMidiMetadatasErrors(t *testing.T) {
	store := NewMetadataStore(&fakeDynamo{err: errors.New("boom")}, "meta")
	_, err := store.GetMidiMetadatas([]string{"a.mid"})
	assert.Error(t, err)

	tooMany := make([]string, MaxBatchSize+1)
	_, err = store.GetMidiMetadatas(tooMany)
	assert.Error(t, err)
}

func TestNewMetadataStoreFromEnvWithoutEndpoint(t *testing.T) {
	t.Setenv("METADATA_ENDPOINT", "")
	store, err := NewMetadataStoreFromEnv()
	require.NoError(t, err)
	assert.Nil(t, store)
}
