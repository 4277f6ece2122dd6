package booking

import (
	"testing"

	"promaallem/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_GuestRequiresPhone(t *testing.T) {
	_, err := Normalize(nil, models.SOSBookingInput{
		FullName: "Test",
		Address:  "Derb Sultan",
	})

	require.Error(t, err)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestNormalize_GuestWithPhoneSucceeds(t *testing.T) {
	b, err := Normalize(nil, models.SOSBookingInput{
		Phone:    "0600000000",
		FullName: "Test",
	})

	require.NoError(t, err)
	assert.Nil(t, b.ClientID)
	assert.Equal(t, "0600000000", b.GuestPhone)
	assert.Equal(t, "Test", b.GuestName)
	assert.Equal(t, models.BookingStatusPending, b.Status)
	assert.NotEmpty(t, b.ID)
}

func TestNormalize_AuthenticatedWithoutPhoneSucceeds(t *testing.T) {
	identity := &models.Identity{UserID: "user-1", Email: "a@b.ma"}

	b, err := Normalize(identity, models.SOSBookingInput{Address: "Maarif"})

	require.NoError(t, err)
	require.NotNil(t, b.ClientID)
	assert.Equal(t, "user-1", *b.ClientID)
	assert.Equal(t, models.BookingStatusPending, b.Status)
}

func TestNormalize_ServiceIDNilWhenAbsent(t *testing.T) {
	b, err := Normalize(nil, models.SOSBookingInput{Phone: "0611111111"})
	require.NoError(t, err)
	assert.Nil(t, b.ServiceID)

	b, err = Normalize(nil, models.SOSBookingInput{Phone: "0611111111", ServiceID: "svc-1"})
	require.NoError(t, err)
	require.NotNil(t, b.ServiceID)
	assert.Equal(t, "svc-1", *b.ServiceID)
}

func TestCoerceEmergency(t *testing.T) {
	cases := []struct {
		name    string
		urgency interface{}
		want    bool
	}{
		{"boolean true", true, true},
		{"literal urgent", "urgent", true},
		{"boolean false", false, false},
		{"uppercase literal", "URGENT", false},
		{"other string", "now please", false},
		{"numeric one", float64(1), false},
		{"missing", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := Normalize(nil, models.SOSBookingInput{
				Phone:   "0600000000",
				Urgency: tc.urgency,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.want, b.IsEmergency)
		})
	}
}
