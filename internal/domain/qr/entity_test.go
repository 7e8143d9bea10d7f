package qr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQRRequest_Expired(t *testing.T) {
	now := time.Now().UTC()
	q := QRRequest{ExpiresAt: now.Add(TokenTTL)}

	assert.False(t, q.Expired(now))
	assert.False(t, q.Expired(now.Add(TokenTTL-time.Second)))
	// Boundary counts as expired
	assert.True(t, q.Expired(now.Add(TokenTTL)))
	assert.True(t, q.Expired(now.Add(TokenTTL+time.Second)))
}

func TestQRRequest_Verifiable(t *testing.T) {
	now := time.Now().UTC()

	cases := []struct {
		name      string
		status    string
		expiresAt time.Time
		want      bool
	}{
		{"pending within window", StatusPending, now.Add(time.Minute), true},
		{"pending expired", StatusPending, now.Add(-time.Minute), false},
		{"already used", StatusUsed, now.Add(time.Minute), false},
		{"already failed", StatusFailed, now.Add(time.Minute), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			q := QRRequest{Status: c.status, ExpiresAt: c.expiresAt}
			assert.Equal(t, c.want, q.Verifiable(now))
		})
	}
}

func TestValidAction(t *testing.T) {
	assert.True(t, ValidAction(ActionCheckIn))
	assert.True(t, ValidAction(ActionCheckOut))
	assert.False(t, ValidAction("checkin"))
	assert.False(t, ValidAction(""))
}
