package dynamo

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type item = map[string]types.AttributeValue

// fakeTable keeps items keyed by the string value of keyName and pages scans
// pageSize items at a time.
type fakeTable struct {
	keyName  string
	pageSize int
	items    map[string]item
}

type fakeAPI struct {
	mu     sync.Mutex
	tables map[string]*fakeTable
	scans  []*dynamodb.ScanInput
	err    error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{tables: map[string]*fakeTable{}}
}

func (f *fakeAPI) table(name, keyName string, pageSize int) {
	f.tables[name] = &fakeTable{keyName: keyName, pageSize: pageSize, items: map[string]item{}}
}

func (f *fakeAPI) keyOf(t *fakeTable, key item) string {
	return key[t.keyName].(*types.AttributeValueMemberS).Value
}

func (f *fakeAPI) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	t := f.tables[aws.ToString(in.TableName)]
	return &dynamodb.GetItemOutput{Item: t.items[f.keyOf(t, in.Key)]}, nil
}

func (f *fakeAPI) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	t := f.tables[aws.ToString(in.TableName)]
	key := f.keyOf(t, in.Item)
	if _, exists := t.items[key]; exists && strings.HasPrefix(aws.ToString(in.ConditionExpression), "attribute_not_exists") {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
	}
	t.items[key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

// UpdateItem understands the "SET #n = :v, ..." form produced by the
// expression builder.
func (f *fakeAPI) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	t := f.tables[aws.ToString(in.TableName)]
	existing, ok := t.items[f.keyOf(t, in.Key)]
	if !ok && in.ConditionExpression != nil {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
	}
	if existing == nil {
		existing = item{}
	}

	assignments := strings.TrimPrefix(strings.TrimSpace(aws.ToString(in.UpdateExpression)), "SET ")
	for _, assignment := range strings.Split(assignments, ",") {
		parts := strings.Split(assignment, "=")
		name := in.ExpressionAttributeNames[strings.TrimSpace(parts[0])]
		existing[name] = in.ExpressionAttributeValues[strings.TrimSpace(parts[1])]
	}
	t.items[f.keyOf(t, in.Key)] = existing
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeAPI) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	t := f.tables[aws.ToString(in.TableName)]
	delete(t.items, f.keyOf(t, in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

// Scan applies a single "#n = :v" filter when one is given.
func (f *fakeAPI) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	copied := *in
	f.scans = append(f.scans, &copied)

	t := f.tables[aws.ToString(in.TableName)]
	keys := make([]string, 0, len(t.items))
	for k := range t.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	start := 0
	if in.ExclusiveStartKey != nil {
		last := f.keyOf(t, in.ExclusiveStartKey)
		start = sort.SearchStrings(keys, last) + 1
	}

	out := &dynamodb.ScanOutput{}
	end := start
	for end < len(keys) && end-start < t.pageSize {
		it := t.items[keys[end]]
		if in.FilterExpression == nil || matchesFilter(in, it) {
			out.Items = append(out.Items, it)
		}
		end++
	}
	if end < len(keys) {
		out.LastEvaluatedKey = item{t.keyName: &types.AttributeValueMemberS{Value: keys[end-1]}}
	}
	return out, nil
}

func matchesFilter(in *dynamodb.ScanInput, it item) bool {
	parts := strings.Split(aws.ToString(in.FilterExpression), "=")
	name := in.ExpressionAttributeNames[strings.TrimSpace(parts[0])]
	want, _ := in.ExpressionAttributeValues[strings.TrimSpace(parts[1])].(*types.AttributeValueMemberS)
	got, _ := it[name].(*types.AttributeValueMemberS)
	return want != nil && got != nil && want.Value == got.Value
}
