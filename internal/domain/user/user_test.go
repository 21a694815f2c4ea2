package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubscription_IsActive(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		sub  Subscription
		want bool
	}{
		{"subscribed and not expired", Subscription{IsSubscribed: true, Expiry: now.Add(time.Hour)}, true},
		{"subscribed but expired", Subscription{IsSubscribed: true, Expiry: now.Add(-time.Hour)}, false},
		{"expiry equal to now", Subscription{IsSubscribed: true, Expiry: now}, false},
		{"not subscribed", Subscription{IsSubscribed: false, Expiry: now.Add(time.Hour)}, false},
		{"zero value", Subscription{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sub.IsActive(now))
		})
	}
}
