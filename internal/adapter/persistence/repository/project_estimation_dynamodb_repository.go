package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"strconv"

	"construction_dashboard/internal/domain/entities"
	"construction_dashboard/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type estimationItemAttr struct {
	ID         string  `dynamodbav:"id"`
	LineItemID string  `dynamodbav:"line_item_id"`
	Quantity   float64 `dynamodbav:"quantity"`
	Rate       float64 `dynamodbav:"rate"`
	Amount     float64 `dynamodbav:"amount"`
	Notes      string  `dynamodbav:"notes,omitempty"`
}

type projectEstimationItem struct {
	ID          string               `dynamodbav:"id"`
	ProjectID   string               `dynamodbav:"project_id"`
	TemplateID  string               `dynamodbav:"template_id"`
	Name        string               `dynamodbav:"name"`
	TotalAmount float64              `dynamodbav:"total_amount"`
	CreatedDate string               `dynamodbav:"created_date"`
	UpdatedDate string               `dynamodbav:"updated_date"`
	IsActive    bool                 `dynamodbav:"is_active"`
	Version     int                  `dynamodbav:"version"`
	Items       []estimationItemAttr `dynamodbav:"items"`
}

// ProjectEstimationDynamoRepository persists versioned estimations.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
//
// The sequences table (PK: id) holds two records per project: the version
// counter under "estimation_version#<project id>" and the control record under
// "estimation_control#<project id>". Every activation change and deletion is
// one TransactWriteItems call that also rewrites the control record on the
// revision it was read at, so the project_id index (eventually consistent) is
// never what decides which estimation is active or whether one may be deleted.
type ProjectEstimationDynamoRepository struct {
	t         table
	sequences table
}

var _ interfaces.IProjectEstimationRepository = (*ProjectEstimationDynamoRepository)(nil)

func NewProjectEstimationDynamoRepository(ddb DynamoAPI, tableName, sequencesTable string) *ProjectEstimationDynamoRepository {
	return &ProjectEstimationDynamoRepository{
		t:         table{ddb: ddb, name: tableName},
		sequences: table{ddb: ddb, name: sequencesTable},
	}
}

func (r *ProjectEstimationDynamoRepository) CreateActive(ctx context.Context, e entities.ProjectEstimation) (entities.ProjectEstimation, error) {
	e.IsActive = true
	av, err := attributevalue.MarshalMap(toProjectEstimationItem(e))
	if err != nil {
		return entities.ProjectEstimation{}, err
	}
	snap, err := r.loadControl(ctx, e.ProjectID)
	if err != nil {
		return entities.ProjectEstimation{}, err
	}

	writes := r.deactivations(snap.actives, e.ID)
	writes = append(writes, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.t.name),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	})
	ctl, err := r.controlWrite(snap, e.ID, snap.Estimations+1)
	if err != nil {
		return entities.ProjectEstimation{}, err
	}
	if err := r.transact(ctx, append(writes, ctl)); err != nil {
		return entities.ProjectEstimation{}, err
	}
	return e, nil
}

func (r *ProjectEstimationDynamoRepository) GetByID(ctx context.Context, id string) (entities.ProjectEstimation, error) {
	it, found, err := getItem[projectEstimationItem](ctx, r.t, id)
	if err != nil || !found {
		return entities.ProjectEstimation{}, err
	}
	return fromProjectEstimationItem(it), nil
}

func (r *ProjectEstimationDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.ProjectEstimation, error) {
	items, err := queryByProject[projectEstimationItem](ctx, r.t, projectID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ProjectEstimation, 0, len(items))
	for _, it := range items {
		out = append(out, fromProjectEstimationItem(it))
	}
	return out, nil
}

// Update rewrites name, items, totals and dates. The active flag is left as
// stored.
func (r *ProjectEstimationDynamoRepository) Update(ctx context.Context, e entities.ProjectEstimation) (entities.ProjectEstimation, error) {
	it := toProjectEstimationItem(e)
	items, err := attributevalue.Marshal(it.Items)
	if err != nil {
		return entities.ProjectEstimation{}, err
	}

	out, err := r.t.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.t.name),
		Key:                 idKey(e.ID),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #name = :name, #items = :items, #total = :total, #updated = :updated"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#name":    "name",
			"#items":   "items",
			"#total":   "total_amount",
			"#updated": "updated_date",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":    &types.AttributeValueMemberS{Value: it.Name},
			":items":   items,
			":total":   &types.AttributeValueMemberN{Value: floatToString(it.TotalAmount)},
			":updated": &types.AttributeValueMemberS{Value: it.UpdatedDate},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if isConditionalCheckFailed(err) {
		return entities.ProjectEstimation{}, nil
	}
	if err != nil {
		return entities.ProjectEstimation{}, err
	}
	var stored projectEstimationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &stored); err != nil {
		return entities.ProjectEstimation{}, err
	}
	return fromProjectEstimationItem(stored), nil
}

func (r *ProjectEstimationDynamoRepository) SetActive(ctx context.Context, projectID, estimationID string) error {
	snap, err := r.loadControl(ctx, projectID)
	if err != nil {
		return err
	}
	writes := r.deactivations(snap.actives, estimationID)
	writes = append(writes, r.activation(estimationID, projectID))
	ctl, err := r.controlWrite(snap, estimationID, snap.Estimations)
	if err != nil {
		return err
	}
	return r.transact(ctx, append(writes, ctl))
}

// Delete removes id and, when promoteID is set, activates promoteID. The
// control record must still count more than one estimation for the project.
func (r *ProjectEstimationDynamoRepository) Delete(ctx context.Context, id, promoteID string) error {
	target, found, err := getItem[projectEstimationItem](ctx, r.t, id)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("estimation %s not found", id)
	}
	snap, err := r.loadControl(ctx, target.ProjectID)
	if err != nil {
		return err
	}
	if snap.Estimations <= 1 {
		return interfaces.ErrLastStoredEstimation
	}

	activeID := snap.ActiveID
	switch {
	case promoteID != "":
		activeID = promoteID
	case activeID == id:
		activeID = ""
	}

	writes := []types.TransactWriteItem{{
		Delete: &types.Delete{
			TableName:           aws.String(r.t.name),
			Key:                 idKey(id),
			ConditionExpression: aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	}}
	if promoteID != "" {
		writes = append(writes, r.deactivations(snap.actives, id, promoteID)...)
		writes = append(writes, r.activation(promoteID, target.ProjectID))
	}
	ctl, err := r.controlWrite(snap, activeID, snap.Estimations-1)
	if err != nil {
		return err
	}
	return r.transact(ctx, append(writes, ctl))
}

// NextVersion increments the project's counter atomically. A missing counter
// starts from the highest stored version.
func (r *ProjectEstimationDynamoRepository) NextVersion(ctx context.Context, projectID string) (int, error) {
	siblings, err := queryByProject[projectEstimationItem](ctx, r.t, projectID)
	if err != nil {
		return 0, err
	}
	highest := 0
	for _, s := range siblings {
		if s.Version > highest {
			highest = s.Version
		}
	}

	out, err := r.sequences.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.sequences.name),
		Key:              idKey("estimation_version#" + projectID),
		UpdateExpression: aws.String("SET #v = if_not_exists(#v, :start) + :one"),
		ExpressionAttributeNames: map[string]string{
			"#v": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":start": &types.AttributeValueMemberN{Value: strconv.Itoa(highest)},
			":one":   &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("allocate estimation version: %w", err)
	}
	var counter struct {
		Value int `dynamodbav:"value"`
	}
	if err := attributevalue.UnmarshalMap(out.Attributes, &counter); err != nil {
		return 0, err
	}
	return counter.Value, nil
}

// estimationControl is the per-project record every multi-record write is
// conditioned on. Revision moves on each write, so two writers that read the
// same revision cannot both commit.
type estimationControl struct {
	ID          string `dynamodbav:"id"`
	ActiveID    string `dynamodbav:"active_id"`
	Estimations int    `dynamodbav:"estimations"`
	Revision    int    `dynamodbav:"revision"`
}

type controlSnapshot struct {
	estimationControl
	stored  bool
	actives []string
}

func controlKey(projectID string) string {
	return "estimation_control#" + projectID
}

// loadControl reads the project's control record. Projects written before the
// record existed get one bootstrapped from the project_id index; the first
// write then creates it under attribute_not_exists.
func (r *ProjectEstimationDynamoRepository) loadControl(ctx context.Context, projectID string) (controlSnapshot, error) {
	ctl, found, err := getItem[estimationControl](ctx, r.sequences, controlKey(projectID))
	if err != nil {
		return controlSnapshot{}, fmt.Errorf("read estimation control: %w", err)
	}
	if found {
		snap := controlSnapshot{estimationControl: ctl, stored: true}
		if ctl.ActiveID != "" {
			snap.actives = []string{ctl.ActiveID}
		}
		return snap, nil
	}

	siblings, err := queryByProject[projectEstimationItem](ctx, r.t, projectID)
	if err != nil {
		return controlSnapshot{}, err
	}
	snap := controlSnapshot{estimationControl: estimationControl{
		ID:          controlKey(projectID),
		Estimations: len(siblings),
	}}
	for _, s := range siblings {
		if s.IsActive {
			snap.actives = append(snap.actives, s.ID)
			snap.ActiveID = s.ID
		}
	}
	log.Printf("[estimation][repository] control bootstrapped project_id=%s estimations=%d actives=%d", projectID, len(siblings), len(snap.actives))
	return snap, nil
}

// controlWrite replaces the control record, conditioned on the snapshot's
// revision, or on its absence when it was bootstrapped.
func (r *ProjectEstimationDynamoRepository) controlWrite(snap controlSnapshot, activeID string, estimations int) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(estimationControl{
		ID:          snap.ID,
		ActiveID:    activeID,
		Estimations: estimations,
		Revision:    snap.Revision + 1,
	})
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	put := &types.Put{
		TableName: aws.String(r.sequences.name),
		Item:      av,
	}
	if snap.stored {
		put.ConditionExpression = aws.String("#rev = :rev")
		put.ExpressionAttributeNames = map[string]string{"#rev": "revision"}
		put.ExpressionAttributeValues = map[string]types.AttributeValue{
			":rev": &types.AttributeValueMemberN{Value: strconv.Itoa(snap.Revision)},
		}
	} else {
		put.ConditionExpression = aws.String("attribute_not_exists(#id)")
		put.ExpressionAttributeNames = map[string]string{"#id": "id"}
	}
	return types.TransactWriteItem{Put: put}, nil
}

// deactivations clears is_active on each id not in skip. A transaction may
// touch an item once, so ids written elsewhere in it are skipped.
func (r *ProjectEstimationDynamoRepository) deactivations(activeIDs []string, skip ...string) []types.TransactWriteItem {
	var writes []types.TransactWriteItem
	for _, id := range activeIDs {
		if slices.Contains(skip, id) {
			continue
		}
		writes = append(writes, types.TransactWriteItem{
			Update: &types.Update{
				TableName:           aws.String(r.t.name),
				Key:                 idKey(id),
				ConditionExpression: aws.String("attribute_exists(#id)"),
				UpdateExpression:    aws.String("SET #active = :false"),
				ExpressionAttributeNames: map[string]string{
					"#id":     "id",
					"#active": "is_active",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":false": &types.AttributeValueMemberBOOL{Value: false},
				},
			},
		})
	}
	return writes
}

func (r *ProjectEstimationDynamoRepository) activation(id, projectID string) types.TransactWriteItem {
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName:           aws.String(r.t.name),
			Key:                 idKey(id),
			ConditionExpression: aws.String("attribute_exists(#id) AND #project = :project"),
			UpdateExpression:    aws.String("SET #active = :true"),
			ExpressionAttributeNames: map[string]string{
				"#id":      "id",
				"#project": "project_id",
				"#active":  "is_active",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":project": &types.AttributeValueMemberS{Value: projectID},
				":true":    &types.AttributeValueMemberBOOL{Value: true},
			},
		},
	}
}

func (r *ProjectEstimationDynamoRepository) transact(ctx context.Context, writes []types.TransactWriteItem) error {
	_, err := r.t.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes})
	var canceled *types.TransactionCanceledException
	if errors.As(err, &canceled) {
		log.Printf("[estimation][repository] transaction canceled writes=%d reason=%s", len(writes), canceled.ErrorMessage())
		return fmt.Errorf("estimation transaction: %w: %s", interfaces.ErrEstimationWriteConflict, canceled.ErrorMessage())
	}
	if err != nil {
		return fmt.Errorf("estimation transaction: %w", err)
	}
	return nil
}

func toProjectEstimationItem(e entities.ProjectEstimation) projectEstimationItem {
	items := make([]estimationItemAttr, 0, len(e.Items))
	for _, it := range e.Items {
		items = append(items, estimationItemAttr{
			ID:         it.ID,
			LineItemID: it.LineItemID,
			Quantity:   it.Quantity,
			Rate:       it.Rate,
			Amount:     it.Amount,
			Notes:      it.Notes,
		})
	}
	return projectEstimationItem{
		ID:          e.ID,
		ProjectID:   e.ProjectID,
		TemplateID:  e.TemplateID,
		Name:        e.Name,
		TotalAmount: e.TotalAmount,
		CreatedDate: formatTime(e.CreatedDate),
		UpdatedDate: formatTime(e.UpdatedDate),
		IsActive:    e.IsActive,
		Version:     e.Version,
		Items:       items,
	}
}

func fromProjectEstimationItem(it projectEstimationItem) entities.ProjectEstimation {
	items := make([]entities.ProjectEstimationItem, 0, len(it.Items))
	for _, a := range it.Items {
		items = append(items, entities.ProjectEstimationItem{
			ID:         a.ID,
			LineItemID: a.LineItemID,
			Quantity:   a.Quantity,
			Rate:       a.Rate,
			Amount:     a.Amount,
			Notes:      a.Notes,
		})
	}
	return entities.ProjectEstimation{
		ID:          it.ID,
		ProjectID:   it.ProjectID,
		TemplateID:  it.TemplateID,
		Name:        it.Name,
		TotalAmount: it.TotalAmount,
		CreatedDate: parseTime(it.CreatedDate),
		UpdatedDate: parseTime(it.UpdatedDate),
		IsActive:    it.IsActive,
		Version:     it.Version,
		Items:       items,
	}
}
