package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/notifications-api/internal/domain"
)

// InboxRepo provides typed DynamoDB operations for the per-user notification
// documents. Each item holds one user's entire inbox as a nested list.
type InboxRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewInboxRepo(client *dynamodb.Client, tableName string) *InboxRepo {
	return &InboxRepo{client: client, tableName: tableName}
}

// Append pushes n onto the user's notification list. The list_append over
// if_not_exists creates the user record on first write, and the whole
// operation is atomic within the item.
func (r *InboxRepo) Append(ctx context.Context, userID string, n domain.Notification) error {
	item, err := attributevalue.MarshalMap(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tableName),
		Key:              strKey("user_id", userID),
		UpdateExpression: aws.String("SET notifications = list_append(if_not_exists(notifications, :empty), :n)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":n":     &types.AttributeValueMemberL{Value: []types.AttributeValue{&types.AttributeValueMemberM{Value: item}}},
		},
	})
	if err != nil {
		return fmt.Errorf("append notification: %w", err)
	}
	return nil
}

// Get returns the user's record, or domain.ErrNotFound when no notification
// was ever created for this user. The read is strongly consistent so a page
// requested right after a create includes the new notification.
func (r *InboxRepo) Get(ctx context.Context, userID string) (*domain.UserRecord, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            strKey("user_id", userID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get user record: %w", err)
	}
	if out.Item == nil {
		return nil, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	var rec domain.UserRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal user record: %w", err)
	}
	return &rec, nil
}

// MarkAsRead flips is_new to false on the notification with the given id.
// Both the lookup and the update are scoped inside the user document's nested
// list: the index is resolved from a consistent read, and the update pins the
// element's id with a condition so a concurrently reordered list cannot flip
// the wrong entry. Marking an already-read notification succeeds.
func (r *InboxRepo) MarkAsRead(ctx context.Context, userID, notificationID string) error {
	rec, err := r.Get(ctx, userID)
	if err != nil {
		return err
	}
	idx := rec.IndexOf(notificationID)
	if idx < 0 {
		return fmt.Errorf("notification %s: %w", notificationID, domain.ErrNotFound)
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 strKey("user_id", userID),
		UpdateExpression:    aws.String(fmt.Sprintf("SET notifications[%d].is_new = :f", idx)),
		ConditionExpression: aws.String(fmt.Sprintf("notifications[%d].id = :nid", idx)),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":f":   &types.AttributeValueMemberBOOL{Value: false},
			":nid": &types.AttributeValueMemberS{Value: notificationID},
		},
	})
	if err != nil {
		var ccfe *types.ConditionalCheckFailedException
		if errors.As(err, &ccfe) {
			return fmt.Errorf("notification %s: %w", notificationID, domain.ErrNotFound)
		}
		return fmt.Errorf("mark as read: %w", err)
	}
	return nil
}
