package repository

import (
	"context"
	"errors"
	"time"

	"paygo_market/internal/domain/entities"
	"paygo_market/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultWalletsTableName      = "wallets"
	defaultTransactionsTableName = "transactions"
	transactionsWalletIDIndex    = "wallet_id-index"

	conditionalCheckFailedCode = "ConditionalCheckFailed"
)

// decimalNumber stores a decimal as a DynamoDB number attribute, which is
// what the balance arithmetic in update expressions operates on.
type decimalNumber struct {
	decimal.Decimal
}

func (d decimalNumber) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: d.String()}, nil
}

func (d *decimalNumber) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		parsed, err := decimal.NewFromString(v.Value)
		if err != nil {
			return err
		}
		d.Decimal = parsed
		return nil
	case *types.AttributeValueMemberS:
		parsed, err := decimal.NewFromString(v.Value)
		if err != nil {
			return err
		}
		d.Decimal = parsed
		return nil
	default:
		return errors.New("balance attribute is not a number")
	}
}

type walletItem struct {
	WalletID      string        `dynamodbav:"wallet_id"`
	UserID        string        `dynamodbav:"user_id"`
	Balance       decimalNumber `dynamodbav:"balance"`
	EscrowAddress string        `dynamodbav:"escrow_address,omitempty"`
	CreatedAt     string        `dynamodbav:"created_at"`
	UpdatedAt     string        `dynamodbav:"updated_at"`
}

type transactionItem struct {
	ID          string `dynamodbav:"id"`
	WalletID    string `dynamodbav:"wallet_id"`
	Type        string `dynamodbav:"type"`
	Amount      string `dynamodbav:"amount"`
	Token       string `dynamodbav:"token"`
	SessionID   string `dynamodbav:"session_id,omitempty"`
	ExternalRef string `dynamodbav:"external_ref,omitempty"`
	Destination string `dynamodbav:"destination,omitempty"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// LedgerDynamoRepository is the ledger store: transaction log plus wallet
// balance projection.
//
// Table requirements:
//   - wallets: PK wallet_id (string); balance is a number attribute so the
//     SDK arithmetic in update expressions applies to it
//   - transactions: PK id (string), GSI wallet_id-index
//     (PK: wallet_id, SK: created_at)
//
// AppendTransaction is a TransactWriteItems pair: the transaction Put is
// conditioned on attribute_not_exists(id) and the wallet balance Update is
// conditioned on balance >= amount for debits. Charge transaction IDs are
// derived from the session ID, so the Put condition is the settlement
// idempotency guard. Two racing charges for one session cannot both land.

type LedgerDynamoRepository struct {
	ddb               *dynamodb.Client
	walletsTable      string
	transactionsTable string
}

var _ interfaces.ILedgerStore = (*LedgerDynamoRepository)(nil)

func NewLedgerDynamoRepository(ddb *dynamodb.Client) *LedgerDynamoRepository {
	return &LedgerDynamoRepository{
		ddb:               ddb,
		walletsTable:      getenvDefault("WALLETS_TABLE", defaultWalletsTableName),
		transactionsTable: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *LedgerDynamoRepository) EnsureWallet(ctx context.Context, userID string) (entities.Wallet, error) {
	walletID := entities.WalletIDFor(userID)
	now := time.Now().UTC()

	w := entities.Wallet{
		WalletID:      walletID,
		UserID:        userID,
		Balance:       decimal.Zero,
		EscrowAddress: entities.EscrowAddressFor(userID),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	av, err := attributevalue.MarshalMap(toWalletItem(w))
	if err != nil {
		return entities.Wallet{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.walletsTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#wid)"),
		ExpressionAttributeNames: map[string]string{
			"#wid": "wallet_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if !errors.As(err, &cfe) {
			return entities.Wallet{}, err
		}
		return r.getWallet(ctx, walletID)
	}
	return w, nil
}

func (r *LedgerDynamoRepository) AppendTransaction(ctx context.Context, tx entities.Transaction) (entities.Transaction, error) {
	if !tx.Amount.IsPositive() {
		return entities.Transaction{}, interfaces.ErrInvalidAmount
	}

	if tx.ID == "" {
		if tx.Type == entities.TransactionTypeCharge {
			tx.ID = entities.ChargeTransactionID(tx.SessionID)
		} else {
			tx.ID = uuid.NewString()
		}
	}
	tx.Status = entities.TransactionStatusConfirmed
	tx.CreatedAt = time.Now().UTC()

	av, err := attributevalue.MarshalMap(toTransactionItem(tx))
	if err != nil {
		return entities.Transaction{}, err
	}

	now := tx.CreatedAt.Format(time.RFC3339Nano)
	amount := &types.AttributeValueMemberN{Value: tx.Amount.String()}

	var balanceUpdate types.Update
	if tx.Type.Debit() {
		balanceUpdate = types.Update{
			TableName: aws.String(r.walletsTable),
			Key: map[string]types.AttributeValue{
				"wallet_id": &types.AttributeValueMemberS{Value: tx.WalletID},
			},
			ConditionExpression: aws.String("attribute_exists(#wid) AND #balance >= :amt"),
			UpdateExpression:    aws.String("SET #balance = #balance - :amt, #updated_at = :updated_at"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":amt":        amount,
				":updated_at": &types.AttributeValueMemberS{Value: now},
			},
			ExpressionAttributeNames: map[string]string{
				"#wid":        "wallet_id",
				"#balance":    "balance",
				"#updated_at": "updated_at",
			},
		}
	} else {
		balanceUpdate = types.Update{
			TableName: aws.String(r.walletsTable),
			Key: map[string]types.AttributeValue{
				"wallet_id": &types.AttributeValueMemberS{Value: tx.WalletID},
			},
			ConditionExpression: aws.String("attribute_exists(#wid)"),
			UpdateExpression:    aws.String("SET #balance = #balance + :amt, #updated_at = :updated_at"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":amt":        amount,
				":updated_at": &types.AttributeValueMemberS{Value: now},
			},
			ExpressionAttributeNames: map[string]string{
				"#wid":        "wallet_id",
				"#balance":    "balance",
				"#updated_at": "updated_at",
			},
		}
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.transactionsTable),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Update: &balanceUpdate,
			},
		},
	})
	if err != nil {
		return entities.Transaction{}, r.mapTransactError(err, tx)
	}
	return tx, nil
}

// mapTransactError translates a cancelled transact-write into the ledger's
// typed errors using the per-item cancellation reasons: index 0 is the
// transaction Put, index 1 the wallet balance Update.
func (r *LedgerDynamoRepository) mapTransactError(err error, tx entities.Transaction) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return err
	}
	reasons := tce.CancellationReasons
	if len(reasons) > 0 && reasons[0].Code != nil && *reasons[0].Code == conditionalCheckFailedCode {
		if tx.Type == entities.TransactionTypeCharge {
			return interfaces.ErrDuplicateSettlement
		}
		return interfaces.ErrDuplicateTransaction
	}
	if len(reasons) > 1 && reasons[1].Code != nil && *reasons[1].Code == conditionalCheckFailedCode {
		if tx.Type.Debit() {
			return interfaces.ErrInsufficientBalance
		}
		return interfaces.ErrWalletNotFound
	}
	return err
}

func (r *LedgerDynamoRepository) CurrentBalance(ctx context.Context, walletID string) (decimal.Decimal, error) {
	w, err := r.getWallet(ctx, walletID)
	if err != nil {
		return decimal.Zero, err
	}
	if w.WalletID == "" {
		return decimal.Zero, interfaces.ErrWalletNotFound
	}
	return w.Balance, nil
}

func (r *LedgerDynamoRepository) History(ctx context.Context, walletID string) ([]entities.Transaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.transactionsTable),
		IndexName:              aws.String(transactionsWalletIDIndex),
		KeyConditionExpression: aws.String("wallet_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": &types.AttributeValueMemberS{Value: walletID},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Transaction, 0, len(out.Items))
	for _, raw := range out.Items {
		var it transactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromTransactionItem(it))
	}
	return items, nil
}

func (r *LedgerDynamoRepository) FindChargeBySession(ctx context.Context, sessionID string) (entities.Transaction, error) {
	// Charge IDs are derived from the session ID, so this is a PK lookup.
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.transactionsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: entities.ChargeTransactionID(sessionID)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *LedgerDynamoRepository) getWallet(ctx context.Context, walletID string) (entities.Wallet, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.walletsTable),
		Key: map[string]types.AttributeValue{
			"wallet_id": &types.AttributeValueMemberS{Value: walletID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Wallet{}, err
	}
	if len(out.Item) == 0 {
		return entities.Wallet{}, nil
	}

	var it walletItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Wallet{}, err
	}
	return fromWalletItem(it), nil
}

func toWalletItem(w entities.Wallet) walletItem {
	return walletItem{
		WalletID:      w.WalletID,
		UserID:        w.UserID,
		Balance:       decimalNumber{w.Balance},
		EscrowAddress: w.EscrowAddress,
		CreatedAt:     w.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     w.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromWalletItem(it walletItem) entities.Wallet {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Wallet{
		WalletID:      it.WalletID,
		UserID:        it.UserID,
		Balance:       it.Balance.Decimal,
		EscrowAddress: it.EscrowAddress,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}

func toTransactionItem(tx entities.Transaction) transactionItem {
	return transactionItem{
		ID:          tx.ID,
		WalletID:    tx.WalletID,
		Type:        string(tx.Type),
		Amount:      tx.Amount.String(),
		Token:       tx.Token,
		SessionID:   tx.SessionID,
		ExternalRef: tx.ExternalRef,
		Destination: tx.Destination,
		Status:      string(tx.Status),
		CreatedAt:   tx.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	amount, _ := decimal.NewFromString(it.Amount)
	return entities.Transaction{
		ID:          it.ID,
		WalletID:    it.WalletID,
		Type:        entities.TransactionType(it.Type),
		Amount:      amount,
		Token:       it.Token,
		SessionID:   it.SessionID,
		ExternalRef: it.ExternalRef,
		Destination: it.Destination,
		Status:      entities.TransactionStatus(it.Status),
		CreatedAt:   createdAt,
	}
}
