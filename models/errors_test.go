package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsConversionError(t *testing.T) {
	conversionErrors := []error{
		&EmptyInputError{Rows: 1},
		&MissingColumnError{Columns: []string{ColEpic}},
		&MissingSentinelError{},
		&OrphanStoryError{Row: 3},
		&InvalidEstimateError{Row: 3, Column: ColServ, Value: "abc"},
	}

	for _, err := range conversionErrors {
		assert.True(t, IsConversionError(err), "err=%v", err)
		// ラップされていても判定できる
		assert.True(t, IsConversionError(fmt.Errorf("展開エラー: %w", err)))
	}

	assert.False(t, IsConversionError(errors.New("入出力エラー")))
	assert.False(t, IsConversionError(nil))
}

func TestErrorMessagesCarryPosition(t *testing.T) {
	assert.Contains(t, (&OrphanStoryError{Row: 7}).Error(), "7")
	assert.Contains(t, (&InvalidEstimateError{Row: 2, Column: ColIOS, Value: "x"}).Error(), "IOS")
	assert.Contains(t, (&MissingColumnError{Columns: []string{"EPIC", "NOTES"}}).Error(), "EPIC, NOTES")
}
