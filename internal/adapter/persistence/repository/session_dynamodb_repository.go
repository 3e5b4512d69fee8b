package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"paygo_market/internal/domain/entities"
	"paygo_market/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultSessionsTableName = "sessions"

type qualityMetricItem struct {
	Timestamp   string `dynamodbav:"timestamp"`
	BitrateKbps int64  `dynamodbav:"bitrate_kbps"`
	LatencyMs   int64  `dynamodbav:"latency_ms"`
	FrameDrops  int64  `dynamodbav:"frame_drops"`
}

type sessionItem struct {
	ID              string              `dynamodbav:"id"`
	VendorID        string              `dynamodbav:"vendor_id"`
	UserID          string              `dynamodbav:"user_id"`
	ServiceID       string              `dynamodbav:"service_id"`
	Status          string              `dynamodbav:"status"`
	SettlementState string              `dynamodbav:"settlement_state"`
	RateAtStart     string              `dynamodbav:"rate_at_start"`
	UnitAtStart     string              `dynamodbav:"unit_at_start"`
	Token           string              `dynamodbav:"token"`
	ClientInfo      string              `dynamodbav:"client_info,omitempty"`
	StartTime       string              `dynamodbav:"start_time"`
	EndTime         string              `dynamodbav:"end_time,omitempty"`
	UsageSeconds    int64               `dynamodbav:"usage_seconds"`
	TotalCost       string              `dynamodbav:"total_cost"`
	QualityMetrics  []qualityMetricItem `dynamodbav:"quality_metrics,omitempty"`
	CreatedAt       string              `dynamodbav:"created_at"`
	UpdatedAt       string              `dynamodbav:"updated_at"`
}

// SessionDynamoRepository persists Session entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// All mutations are conditional updates: status transitions check the
// current status, metric appends check the session is non-terminal, and
// the settlement_state writes are the compare-and-set that serializes
// settlement per session. A failed condition comes back as a zero-value
// session (or false for the CAS), never as an error.

type SessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb *dynamodb.Client) *SessionDynamoRepository {
	return &SessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SESSIONS_TABLE", defaultSessionsTableName),
	}
}

func (r *SessionDynamoRepository) Create(ctx context.Context, s entities.Session) (entities.Session, error) {
	it := toSessionItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Session{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Session{}, err
	}
	return s, nil
}

func (r *SessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Session, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Session{}, err
	}
	if len(out.Item) == 0 {
		return entities.Session{}, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Session{}, err
	}
	return fromSessionItem(it), nil
}

func (r *SessionDynamoRepository) UpdateStatus(ctx context.Context, id string, from []entities.SessionStatus, to entities.SessionStatus) (entities.Session, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	placeholders := make([]string, 0, len(from))
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(to)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	for i, s := range from {
		ph := fmt.Sprintf(":from%d", i)
		placeholders = append(placeholders, ph)
		values[ph] = &types.AttributeValueMemberS{Value: string(s)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status IN (" + strings.Join(placeholders, ", ") + ")"),
		UpdateExpression:          aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Session{}, nil
		}
		return entities.Session{}, err
	}
	return sessionFromAttributes(out.Attributes)
}

func (r *SessionDynamoRepository) AppendMetrics(ctx context.Context, id string, m entities.QualityMetric) (entities.Session, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	metricAV, err := attributevalue.MarshalMap(toQualityMetricItem(m))
	if err != nil {
		return entities.Session{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status IN (:active, :paused)"),
		UpdateExpression:    aws.String("SET #qm = list_append(if_not_exists(#qm, :empty), :metric), #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active":     &types.AttributeValueMemberS{Value: string(entities.SessionStatusActive)},
			":paused":     &types.AttributeValueMemberS{Value: string(entities.SessionStatusPaused)},
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":metric":     &types.AttributeValueMemberL{Value: []types.AttributeValue{&types.AttributeValueMemberM{Value: metricAV}}},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#qm":         "quality_metrics",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Session{}, nil
		}
		return entities.Session{}, err
	}
	return sessionFromAttributes(out.Attributes)
}

func (r *SessionDynamoRepository) CompareAndSetSettlementState(ctx context.Context, id string, from, to entities.SettlementState) (bool, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #ss = :from"),
		UpdateExpression:    aws.String("SET #ss = :to, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#ss":         "settlement_state",
			"#updated_at": "updated_at",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *SessionDynamoRepository) FinalizeSettlement(ctx context.Context, id string, outcome interfaces.SettlementOutcome) (entities.Session, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #ss = :settling"),
		UpdateExpression: aws.String("SET #status = :status, #ss = :state, #end_time = :end_time, " +
			"#usage_seconds = :usage_seconds, #total_cost = :total_cost, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":settling":      &types.AttributeValueMemberS{Value: string(entities.SettlementStateSettling)},
			":status":        &types.AttributeValueMemberS{Value: string(outcome.Status)},
			":state":         &types.AttributeValueMemberS{Value: string(outcome.SettlementState)},
			":end_time":      &types.AttributeValueMemberS{Value: outcome.EndTime.UTC().Format(time.RFC3339Nano)},
			":usage_seconds": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", outcome.UsageSeconds)},
			":total_cost":    &types.AttributeValueMemberS{Value: outcome.TotalCost.String()},
			":updated_at":    &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":            "id",
			"#status":        "status",
			"#ss":            "settlement_state",
			"#end_time":      "end_time",
			"#usage_seconds": "usage_seconds",
			"#total_cost":    "total_cost",
			"#updated_at":    "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Session{}, nil
		}
		return entities.Session{}, err
	}
	return sessionFromAttributes(out.Attributes)
}

func sessionFromAttributes(attrs map[string]types.AttributeValue) (entities.Session, error) {
	if len(attrs) == 0 {
		return entities.Session{}, nil
	}
	var it sessionItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.Session{}, err
	}
	return fromSessionItem(it), nil
}

func toQualityMetricItem(m entities.QualityMetric) qualityMetricItem {
	return qualityMetricItem{
		Timestamp:   m.Timestamp.UTC().Format(time.RFC3339Nano),
		BitrateKbps: m.BitrateKbps,
		LatencyMs:   m.LatencyMs,
		FrameDrops:  m.FrameDrops,
	}
}

func toSessionItem(s entities.Session) sessionItem {
	it := sessionItem{
		ID:              s.ID,
		VendorID:        s.VendorID,
		UserID:          s.UserID,
		ServiceID:       s.ServiceID,
		Status:          string(s.Status),
		SettlementState: string(s.SettlementState),
		RateAtStart:     s.RateAtStart.String(),
		UnitAtStart:     string(s.UnitAtStart),
		Token:           s.Token,
		ClientInfo:      s.ClientInfo,
		StartTime:       s.StartTime.UTC().Format(time.RFC3339Nano),
		UsageSeconds:    s.UsageSeconds,
		TotalCost:       s.TotalCost.String(),
		CreatedAt:       s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if s.EndTime != nil {
		it.EndTime = s.EndTime.UTC().Format(time.RFC3339Nano)
	}
	for _, m := range s.QualityMetrics {
		it.QualityMetrics = append(it.QualityMetrics, toQualityMetricItem(m))
	}
	return it
}

func fromSessionItem(it sessionItem) entities.Session {
	startTime, _ := time.Parse(time.RFC3339Nano, it.StartTime)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	rate, _ := decimal.NewFromString(it.RateAtStart)
	totalCost, _ := decimal.NewFromString(it.TotalCost)

	s := entities.Session{
		ID:              it.ID,
		VendorID:        it.VendorID,
		UserID:          it.UserID,
		ServiceID:       it.ServiceID,
		Status:          entities.SessionStatus(it.Status),
		SettlementState: entities.SettlementState(it.SettlementState),
		RateAtStart:     rate,
		UnitAtStart:     entities.BillingUnit(it.UnitAtStart),
		Token:           it.Token,
		ClientInfo:      it.ClientInfo,
		StartTime:       startTime,
		UsageSeconds:    it.UsageSeconds,
		TotalCost:       totalCost,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
	if it.EndTime != "" {
		endTime, err := time.Parse(time.RFC3339Nano, it.EndTime)
		if err == nil {
			s.EndTime = &endTime
		}
	}
	for _, m := range it.QualityMetrics {
		ts, _ := time.Parse(time.RFC3339Nano, m.Timestamp)
		s.QualityMetrics = append(s.QualityMetrics, entities.QualityMetric{
			Timestamp:   ts,
			BitrateKbps: m.BitrateKbps,
			LatencyMs:   m.LatencyMs,
			FrameDrops:  m.FrameDrops,
		})
	}
	return s
}
