package db

import (
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/rhythmdex/constants"
	"github.com/jsphweid/rhythmdex/model"
	"github.com/pkg/errors"
)

// BatchGetItem accepts at most this many keys per table per request.
const MaxBatchSize = 100

type MetadataStore struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func NewMetadataStore(client dynamodbiface.DynamoDBAPI, table string) *MetadataStore {
	return &MetadataStore{client: client, table: table}
}

// NewMetadataStoreFromEnv returns nil when METADATA_ENDPOINT isn't set.
func NewMetadataStoreFromEnv() (*MetadataStore, error) {
	endpoint := constants.GetMetadataEndpoint()
	if endpoint == "" {
		return nil, nil
	}
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return nil, errors.Wrap(err, "Could not create a new DynamoDB session")
	}
	return NewMetadataStore(dynamodb.New(sess), constants.GetMetadataTable()), nil
}

// GetMidiMetadatas looks up metadata keyed by MIDI filename. Files without an
// entry are missing from the result.
func (s *MetadataStore) GetMidiMetadatas(filenames []string) (map[string]model.MidiMetadata, error) {
	if len(filenames) > MaxBatchSize {
		return nil, errors.Errorf("can't look up more than %d filenames at once, got %d", MaxBatchSize, len(filenames))
	}

	res := make(map[string]model.MidiMetadata)

	if len(filenames) == 0 {
		return res, nil
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, filename := range filenames {
		keys = append(keys, map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(filename)},
		})
	}

	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			s.table: {Keys: keys},
		},
	}
	dbres, err := s.client.BatchGetItem(input)
	if err != nil {
		return nil, errors.Wrap(err, "Error from DynamoDB")
	}

	for _, v := range dbres.Responses[s.table] {
		pk := v["PK"]
		if pk == nil || pk.S == nil {
			continue
		}
		var m model.MidiMetadata
		if year := v["Year"]; year != nil && year.N != nil {
			y, _ := strconv.ParseUint(*year.N, 10, 32)
			m.Year = uint(y)
		}
		m.Artist = stringAttr(v, "Artist")
		m.Release = stringAttr(v, "Release")
		m.Title = stringAttr(v, "Title")
		res[*pk.S] = m
	}

	return res, nil
}

func stringAttr(item map[string]*dynamodb.AttributeValue, name string) string {
	if v := item[name]; v != nil && v.S != nil {
		return *v.S
	}
	return ""
}
