package refs_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/refs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("valid client", func(t *testing.T) {
		c, err := refs.NewClient(id, "Amina Alaoui", "amina@example.com", "0612345678", "12 Rue des Orangers")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Amina Alaoui", c.Name())
		assert.Equal(t, "amina@example.com", c.Email())
	})

	t.Run("email is required", func(t *testing.T) {
		_, err := refs.NewClient(id, "Amina Alaoui", "", "0612345678", "")
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var c *refs.Client
		assert.Equal(t, refs.ErrClientIsNotConstructed, c.Validate())
	})
}

func TestNewRecipient(t *testing.T) {
	t.Run("phone is required", func(t *testing.T) {
		_, err := refs.NewRecipient(kernel.NewUUID(), "Karim Benani", "", "3 Avenue Hassan II")
		require.Error(t, err)
	})

	t.Run("valid recipient", func(t *testing.T) {
		r, err := refs.NewRecipient(kernel.NewUUID(), "Karim Benani", "0698765432", "3 Avenue Hassan II")
		require.NoError(t, err)
		require.NoError(t, r.Validate())
	})
}

func TestNewCourier(t *testing.T) {
	t.Run("valid courier", func(t *testing.T) {
		c, err := refs.NewCourier(kernel.NewUUID(), "Yassine Tazi", "yassine@example.com", "0655555555")
		require.NoError(t, err)
		require.NoError(t, c.Validate())
	})

	t.Run("invalid id", func(t *testing.T) {
		var id kernel.UUID
		_, err := refs.NewCourier(id, "Yassine Tazi", "yassine@example.com", "")
		require.Error(t, err)
	})
}

func TestNewZone(t *testing.T) {
	t.Run("name is required", func(t *testing.T) {
		_, err := refs.NewZone(kernel.NewUUID(), "", "city center")
		require.Error(t, err)
	})
}

func TestNewProduct(t *testing.T) {
	t.Run("negative price is rejected", func(t *testing.T) {
		_, err := refs.NewProduct(kernel.NewUUID(), "Laptop", -1)
		require.Error(t, err)
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		p, err := refs.NewProduct(kernel.NewUUID(), "Flyer", 0)
		require.NoError(t, err)
		require.NoError(t, p.Validate())
	})
}
