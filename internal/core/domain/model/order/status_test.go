package order_test

import (
	"fmt"
	"testing"

	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(order.Unknown))
	assert.Equal(t, []order.Status{order.Pending, order.Cooking, order.Cooked, order.PickedUp, order.Delivered},
		order.Statuses())
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range order.Statuses() {
		t.Run(fmt.Sprintf("accepts %s", status), func(t *testing.T) {
			require.NoError(t, status.Validate())
		})
	}

	for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(6)} {
		t.Run(fmt.Sprintf("rejects %d", int(status)), func(t *testing.T) {
			err := status.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), "status is invalid")
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, status := range order.Statuses() {
		parsed, err := order.ParseStatus(status.String())

		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	for _, name := range []string{"", "pending", "Unknown", "Cancelled"} {
		_, err := order.ParseStatus(name)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, name)
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "PickedUp", order.PickedUp.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}
