package repository

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"testing"
	"time"

	"construction_dashboard/internal/domain/entities"
	"construction_dashboard/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo implements the calls a test needs; anything else panics through
// the nil embedded interface.
type fakeDynamo struct {
	DynamoAPI
	items       map[string]map[string]types.AttributeValue
	queryItems  []map[string]types.AttributeValue
	putErr      error
	update      *dynamodb.UpdateItemInput
	updateOut   map[string]types.AttributeValue
	transact    *dynamodb.TransactWriteItemsInput
	transactErr error
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[id]}, nil
}

func (f *fakeDynamo) Query(_ context.Context, _ *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return &dynamodb.QueryOutput{Items: f.queryItems}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, _ *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return &dynamodb.PutItemOutput{}, f.putErr
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.update = in
	return &dynamodb.UpdateItemOutput{Attributes: f.updateOut}, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.transact = in
	return &dynamodb.TransactWriteItemsOutput{}, f.transactErr
}

func marshalEstimation(t *testing.T, e entities.ProjectEstimation) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toProjectEstimationItem(e))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func marshalControl(t *testing.T, c estimationControl) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

// describeWrites renders a transaction as "op:id" entries, with the control
// record shown as "control:<active id>/<estimations>/<revision>".
func describeWrites(t *testing.T, in *dynamodb.TransactWriteItemsInput) []string {
	t.Helper()
	if in == nil {
		return nil
	}
	var out []string
	for _, w := range in.TransactItems {
		switch {
		case w.Update != nil:
			op := "deactivate"
			if w.Update.ExpressionAttributeValues[":true"] != nil {
				op = "activate"
			}
			out = append(out, op+":"+w.Update.Key["id"].(*types.AttributeValueMemberS).Value)
		case w.Delete != nil:
			out = append(out, "delete:"+w.Delete.Key["id"].(*types.AttributeValueMemberS).Value)
		case w.Put != nil && aws.ToString(w.Put.TableName) == "sequences":
			var c estimationControl
			if err := attributevalue.UnmarshalMap(w.Put.Item, &c); err != nil {
				t.Fatalf("unmarshal control: %v", err)
			}
			out = append(out, "control:"+c.ActiveID+"/"+strconv.Itoa(c.Estimations)+"/"+strconv.Itoa(c.Revision))
		case w.Put != nil:
			out = append(out, "put:"+w.Put.Item["id"].(*types.AttributeValueMemberS).Value)
		}
	}
	return out
}

func controlCondition(in *dynamodb.TransactWriteItemsInput) string {
	last := in.TransactItems[len(in.TransactItems)-1].Put
	cond := aws.ToString(last.ConditionExpression)
	if rev, ok := last.ExpressionAttributeValues[":rev"]; ok {
		cond += " " + rev.(*types.AttributeValueMemberN).Value
	}
	return cond
}

func TestProjectEstimationDynamoRepository_CreateActive(t *testing.T) {
	cases := []struct {
		name      string
		fake      *fakeDynamo
		writes    []string
		condition string
	}{
		{
			name: "stored control",
			fake: &fakeDynamo{items: map[string]map[string]types.AttributeValue{
				"estimation_control#p1": marshalControl(t, estimationControl{ID: "estimation_control#p1", ActiveID: "e1", Estimations: 2, Revision: 7}),
			}},
			writes:    []string{"deactivate:e1", "put:e3", "control:e3/3/8"},
			condition: "#rev = :rev 7",
		},
		{
			name: "control bootstrapped from the index",
			fake: &fakeDynamo{queryItems: []map[string]types.AttributeValue{
				marshalEstimation(t, entities.ProjectEstimation{ID: "e1", ProjectID: "p1", IsActive: true, Version: 1}),
				marshalEstimation(t, entities.ProjectEstimation{ID: "e2", ProjectID: "p1", Version: 2}),
			}},
			writes:    []string{"deactivate:e1", "put:e3", "control:e3/3/1"},
			condition: "attribute_not_exists(#id)",
		},
		{
			name:      "first estimation of a project",
			fake:      &fakeDynamo{},
			writes:    []string{"put:e3", "control:e3/1/1"},
			condition: "attribute_not_exists(#id)",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := NewProjectEstimationDynamoRepository(tc.fake, "project_estimations", "sequences")

			got, err := repo.CreateActive(context.Background(), entities.ProjectEstimation{ID: "e3", ProjectID: "p1", Version: 3})
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if !got.IsActive {
				t.Fatalf("created estimation must be active")
			}
			if w := describeWrites(t, tc.fake.transact); !reflect.DeepEqual(w, tc.writes) {
				t.Fatalf("expected writes %v, got %v", tc.writes, w)
			}
			if c := controlCondition(tc.fake.transact); c != tc.condition {
				t.Fatalf("expected control condition %q, got %q", tc.condition, c)
			}
		})
	}
}

func TestProjectEstimationDynamoRepository_SetActive(t *testing.T) {
	cases := []struct {
		name   string
		active string
		target string
		writes []string
	}{
		{name: "switches the active estimation", active: "e1", target: "e2", writes: []string{"deactivate:e1", "activate:e2", "control:e2/3/5"}},
		{name: "target already active", active: "e2", target: "e2", writes: []string{"activate:e2", "control:e2/3/5"}},
		{name: "no active estimation", active: "", target: "e3", writes: []string{"activate:e3", "control:e3/3/5"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeDynamo{items: map[string]map[string]types.AttributeValue{
				"estimation_control#p1": marshalControl(t, estimationControl{ID: "estimation_control#p1", ActiveID: tc.active, Estimations: 3, Revision: 4}),
			}}
			repo := NewProjectEstimationDynamoRepository(fake, "project_estimations", "sequences")

			if err := repo.SetActive(context.Background(), "p1", tc.target); err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if w := describeWrites(t, fake.transact); !reflect.DeepEqual(w, tc.writes) {
				t.Fatalf("expected writes %v, got %v", tc.writes, w)
			}
			for _, w := range fake.transact.TransactItems {
				if w.Update == nil || w.Update.ExpressionAttributeValues[":true"] == nil {
					continue
				}
				if aws.ToString(w.Update.ConditionExpression) != "attribute_exists(#id) AND #project = :project" {
					t.Fatalf("activation must be bound to the project, got %q", aws.ToString(w.Update.ConditionExpression))
				}
				if p := w.Update.ExpressionAttributeValues[":project"].(*types.AttributeValueMemberS).Value; p != "p1" {
					t.Fatalf("expected project p1, got %s", p)
				}
			}
			if c := controlCondition(fake.transact); c != "#rev = :rev 4" {
				t.Fatalf("unexpected control condition %q", c)
			}
		})
	}
}

func TestProjectEstimationDynamoRepository_Delete(t *testing.T) {
	stored := func(t *testing.T, active string, estimations int) map[string]map[string]types.AttributeValue {
		return map[string]map[string]types.AttributeValue{
			"e1": marshalEstimation(t, entities.ProjectEstimation{ID: "e1", ProjectID: "p1", Version: 1, IsActive: active == "e1"}),
			"e2": marshalEstimation(t, entities.ProjectEstimation{ID: "e2", ProjectID: "p1", Version: 2, IsActive: active == "e2"}),
			"estimation_control#p1": marshalControl(t, estimationControl{
				ID: "estimation_control#p1", ActiveID: active, Estimations: estimations, Revision: 9,
			}),
		}
	}
	cases := []struct {
		name      string
		active    string
		count     int
		id        string
		promoteID string
		writes    []string
		err       error
	}{
		{name: "inactive estimation", active: "e1", count: 3, id: "e2", writes: []string{"delete:e2", "control:e1/2/10"}},
		{name: "active estimation with promotion", active: "e2", count: 2, id: "e2", promoteID: "e1", writes: []string{"delete:e2", "activate:e1", "control:e1/1/10"}},
		{name: "promotion when nothing else is active", active: "", count: 2, id: "e2", promoteID: "e1", writes: []string{"delete:e2", "activate:e1", "control:e1/1/10"}},
		{name: "last estimation", active: "e1", count: 1, id: "e1", err: interfaces.ErrLastStoredEstimation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeDynamo{items: stored(t, tc.active, tc.count)}
			repo := NewProjectEstimationDynamoRepository(fake, "project_estimations", "sequences")

			err := repo.Delete(context.Background(), tc.id, tc.promoteID)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected %v, got %v", tc.err, err)
				}
				if fake.transact != nil {
					t.Fatalf("nothing must be written, got %v", describeWrites(t, fake.transact))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if w := describeWrites(t, fake.transact); !reflect.DeepEqual(w, tc.writes) {
				t.Fatalf("expected writes %v, got %v", tc.writes, w)
			}
			if c := controlCondition(fake.transact); c != "#rev = :rev 9" {
				t.Fatalf("unexpected control condition %q", c)
			}
		})
	}

	t.Run("unknown estimation", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewProjectEstimationDynamoRepository(fake, "project_estimations", "sequences")
		if err := repo.Delete(context.Background(), "nope", ""); err == nil || fake.transact != nil {
			t.Fatalf("expected not found without writes, got %v", err)
		}
	})
}

func TestProjectEstimationDynamoRepository_CanceledTransaction(t *testing.T) {
	fake := &fakeDynamo{
		items: map[string]map[string]types.AttributeValue{
			"estimation_control#p1": marshalControl(t, estimationControl{ID: "estimation_control#p1", ActiveID: "e1", Estimations: 2, Revision: 1}),
		},
		transactErr: &types.TransactionCanceledException{Message: aws.String("ConditionalCheckFailed")},
	}
	repo := NewProjectEstimationDynamoRepository(fake, "project_estimations", "sequences")

	err := repo.SetActive(context.Background(), "p1", "e2")
	if !errors.Is(err, interfaces.ErrEstimationWriteConflict) {
		t.Fatalf("expected ErrEstimationWriteConflict, got %v", err)
	}
}

func TestProjectEstimationDynamoRepository_NextVersion(t *testing.T) {
	fake := &fakeDynamo{
		queryItems: []map[string]types.AttributeValue{
			marshalEstimation(t, entities.ProjectEstimation{ID: "e1", ProjectID: "p1", Version: 4}),
		},
		updateOut: map[string]types.AttributeValue{
			"value": &types.AttributeValueMemberN{Value: "5"},
		},
	}
	repo := NewProjectEstimationDynamoRepository(fake, "project_estimations", "sequences")

	v, err := repo.NextVersion(context.Background(), "p1")
	if err != nil || v != 5 {
		t.Fatalf("expected 5, got %d err=%v", v, err)
	}
	start := fake.update.ExpressionAttributeValues[":start"].(*types.AttributeValueMemberN).Value
	if start != "4" {
		t.Fatalf("counter must start from highest stored version, got %s", start)
	}
	if *fake.update.TableName != "sequences" {
		t.Fatalf("unexpected table %s", *fake.update.TableName)
	}
}

func TestLineItemDynamoRepository_UpdateMissing(t *testing.T) {
	fake := &fakeDynamo{putErr: &types.ConditionalCheckFailedException{}}
	repo := NewLineItemDynamoRepository(fake, "line_items")

	got, err := repo.Update(context.Background(), entities.LineItem{ID: "nope"})
	if err != nil || got.ID != "" {
		t.Fatalf("expected zero value for missing item, got %+v err=%v", got, err)
	}
}

func TestProjectItemRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	p := entities.Project{
		ID:              "PRJ001",
		Name:            "Villa",
		ClientName:      "Asha",
		DateCreated:     now,
		EstimatedBudget: 2500000.5,
		Status:          entities.ProjectStatusOnHold,
		Timeline: []entities.TimelineEvent{
			{ID: "t1", Title: "Project created", Date: now, Status: entities.TimelineEventCompleted},
		},
	}
	got := fromProjectItem(toProjectItem(p))
	if got.EstimatedBudget != p.EstimatedBudget || !got.DateCreated.Equal(now) || !got.AgreementDate.IsZero() {
		t.Fatalf("unexpected round trip: %+v", got)
	}
	if len(got.Timeline) != 1 || got.Timeline[0].Status != entities.TimelineEventCompleted {
		t.Fatalf("timeline lost: %+v", got.Timeline)
	}
}

func TestParseStoredValues(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 123, time.UTC)
	if got := parseTime(formatTime(now)); !got.Equal(now) {
		t.Fatalf("expected %v, got %v", now, got)
	}
	for _, s := range []string{"", "not-a-time", "2026-13-01"} {
		if got := parseTime(s); !got.IsZero() {
			t.Fatalf("parseTime(%q) = %v, want zero time", s, got)
		}
	}
	if got := parseFloat(floatToString(0.4995)); got != 0.4995 {
		t.Fatalf("expected 0.4995, got %v", got)
	}
	if got := parseFloat("abc"); got != 0 {
		t.Fatalf("parseFloat of garbage = %v, want 0", got)
	}
}
