/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package log

import "go.uber.org/zap"

// Field names used across the construction and resolution packages.
const (
	FieldSuffix            = "suffix"
	FieldDID               = "did"
	FieldOperationType     = "operationType"
	FieldTransactionTime   = "transactionTime"
	FieldTransactionNumber = "transactionNumber"
	FieldOperationIndex    = "operationIndex"
	FieldOperationNumber   = "operationNumber"
	FieldKeyID             = "kid"
	FieldReason            = "reason"
)

// WithSuffix sets the DID unique-suffix field.
func WithSuffix(value string) zap.Field {
	return zap.String(FieldSuffix, value)
}

// WithDID sets the DID field.
func WithDID(value string) zap.Field {
	return zap.String(FieldDID, value)
}

// WithOperationType sets the operation-type field.
func WithOperationType(value string) zap.Field {
	return zap.String(FieldOperationType, value)
}

// WithTransactionTime sets the transaction-time field.
func WithTransactionTime(value uint64) zap.Field {
	return zap.Uint64(FieldTransactionTime, value)
}

// WithTransactionNumber sets the transaction-number field.
func WithTransactionNumber(value uint64) zap.Field {
	return zap.Uint64(FieldTransactionNumber, value)
}

// WithOperationIndex sets the operation-index field.
func WithOperationIndex(value uint32) zap.Field {
	return zap.Uint32(FieldOperationIndex, value)
}

// WithOperationNumber sets the operation-number field.
func WithOperationNumber(value uint32) zap.Field {
	return zap.Uint32(FieldOperationNumber, value)
}

// WithKeyID sets the signing-key-id field.
func WithKeyID(value string) zap.Field {
	return zap.String(FieldKeyID, value)
}

// WithReason sets a free-form reason field, used when logging a skipped or rejected operation.
func WithReason(value string) zap.Field {
	return zap.String(FieldReason, value)
}
