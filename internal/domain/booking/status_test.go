package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LumiereBeauty/salon-scheduler/internal/httperr"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "cancelled", "completed"} {
		got, err := ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, Status(s), got)
	}

	_, err := ParseStatus("rescheduled")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidStatus))

	_, err = ParseStatus("")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidStatus))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}

func TestCanCustomerCancel(t *testing.T) {
	assert.NoError(t, CanCustomerCancel(StatusPending))
	assert.NoError(t, CanCustomerCancel(StatusConfirmed))
	assert.NoError(t, CanCustomerCancel(StatusCompleted))

	err := CanCustomerCancel(StatusCancelled)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidStatus))
}

func TestClassifyChange(t *testing.T) {
	assert.Equal(t, ChangeConfirmed, ClassifyChange(StatusPending, StatusConfirmed))
	assert.Equal(t, ChangeConfirmed, ClassifyChange(StatusCancelled, StatusConfirmed))

	assert.Equal(t, ChangeRefused, ClassifyChange(StatusPending, StatusCancelled))
	assert.Equal(t, ChangeCancelled, ClassifyChange(StatusConfirmed, StatusCancelled))
	assert.Equal(t, ChangeCancelled, ClassifyChange(StatusCompleted, StatusCancelled))

	assert.Equal(t, ChangeGeneric, ClassifyChange(StatusConfirmed, StatusCompleted))
	assert.Equal(t, ChangeGeneric, ClassifyChange(StatusConfirmed, StatusPending))
}
