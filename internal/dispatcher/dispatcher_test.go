package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/koungkub/appointment-notification-service/internal/client"
	mockclient "github.com/koungkub/appointment-notification-service/internal/client/mock"
	"github.com/koungkub/appointment-notification-service/internal/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestDispatcher(t *testing.T, provider client.PushProvider) (*Dispatcher, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zapcore.InfoLevel)
	d, err := NewDispatcher(Params{
		Config:   Config{PlaceholderPrefix: "REPLACE"},
		Provider: provider,
		Logger:   zap.New(core),
	})
	require.NoError(t, err)
	return d, logs
}

func TestDispatcher_IsPlaceholder(t *testing.T) {
	tests := []struct {
		name        string
		prefix      string
		destination string
		expected    bool
	}{
		{"empty destination", "REPLACE", "", true},
		{"placeholder marker", "REPLACE", "REPLACE_WITH_DOCTOR_TOKEN", true},
		{"bare marker", "REPLACE", "REPLACE", true},
		{"real token", "REPLACE", "eyM6m19NSCCOxXmWdNRRqk:APA91bHL5nLum3fpPVrL1T", false},
		{"marker not at start", "REPLACE", "token-REPLACE", false},
		{"marker is case sensitive", "REPLACE", "replace_me", false},
		{"empty prefix only skips empty destination", "", "REPLACE_ME", false},
		{"empty prefix still skips empty destination", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Dispatcher{placeholderPrefix: tt.prefix}
			assert.Equal(t, tt.expected, d.IsPlaceholder(tt.destination))
		})
	}
}

func TestDispatcher_Dispatch_SkipsPlaceholders(t *testing.T) {
	destinations := []string{"", "REPLACE_WITH_PATIENT_TOKEN", "REPLACE"}

	for _, destination := range destinations {
		t.Run(destination, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			provider := mockclient.NewMockPushProvider(ctrl)
			provider.EXPECT().Name().Return(client.ProviderFCM).AnyTimes()
			provider.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

			d, logs := newTestDispatcher(t, provider)

			result, err := d.Dispatch(context.Background(), message.Request{
				Destination: destination,
				Title:       "New Appointment",
				Body:        "X booked",
				Metadata:    message.Metadata{"type": message.String("new_booking")},
			})

			require.NoError(t, err)
			assert.True(t, result.Skipped)
			assert.Empty(t, result.ReceiptID)

			entries := logs.FilterMessage("skip sending to placeholder token").All()
			require.Len(t, entries, 1)
			assert.Equal(t, "New Appointment", entries[0].ContextMap()["title"])
		})
	}
}

func TestDispatcher_Dispatch_Sends(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mockclient.NewMockPushProvider(ctrl)
	provider.EXPECT().Name().Return(client.ProviderFCM).AnyTimes()
	provider.EXPECT().Send(gomock.Any(), client.Message{
		Token: "validtoken123",
		Title: "Appointment Confirmed",
		Body:  "Dr. Y confirmed your appointment",
		Data:  map[string]string{"appointmentId": "1"},
	}).Return("msg-001", nil).Times(1)

	d, logs := newTestDispatcher(t, provider)

	result, err := d.Dispatch(context.Background(), message.Request{
		Destination: "validtoken123",
		Title:       "Appointment Confirmed",
		Body:        "Dr. Y confirmed your appointment",
		Metadata:    message.Metadata{"appointmentId": message.Int(1)},
	})

	require.NoError(t, err)
	assert.False(t, result.Skipped)
	assert.Equal(t, "msg-001", result.ReceiptID)

	entries := logs.FilterMessage("notification sent").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "Appointment Confirmed", fields["title"])
	assert.Equal(t, "msg-001", fields["receipt_id"])
	assert.NotEmpty(t, fields["dispatch_id"])
}

func TestDispatcher_Dispatch_CoercesMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mockclient.NewMockPushProvider(ctrl)
	provider.EXPECT().Name().Return(client.ProviderFCM).AnyTimes()

	var got client.Message
	provider.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg client.Message) (string, error) {
			got = msg
			return "msg-002", nil
		})

	d, _ := newTestDispatcher(t, provider)

	_, err := d.Dispatch(context.Background(), message.Request{
		Destination: "validtoken123",
		Title:       "New Appointment",
		Body:        "ridah houssin booked an appointment",
		Metadata: message.Metadata{
			"appointmentId":   message.Int(1),
			"doctorId":        message.Int(1),
			"fee":             message.Float(12.5),
			"followUp":        message.Bool(true),
			"patientName":     message.String("ridah houssin"),
			"appointmentTime": message.String("15:00"),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"appointmentId":   "1",
		"doctorId":        "1",
		"fee":             "12.5",
		"followUp":        "true",
		"patientName":     "ridah houssin",
		"appointmentTime": "15:00",
	}, got.Data)
}

func TestDispatcher_Dispatch_NoDeduplication(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mockclient.NewMockPushProvider(ctrl)
	provider.EXPECT().Name().Return(client.ProviderFCM).AnyTimes()
	provider.EXPECT().Send(gomock.Any(), gomock.Any()).Return("msg-001", nil).Times(2)

	d, _ := newTestDispatcher(t, provider)

	req := message.Request{Destination: "validtoken123", Title: "Appointment Confirmed"}
	for range 2 {
		_, err := d.Dispatch(context.Background(), req)
		require.NoError(t, err)
	}
}

func TestDispatcher_Dispatch_ProviderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mockclient.NewMockPushProvider(ctrl)
	provider.EXPECT().Name().Return(client.ProviderFCM).AnyTimes()

	providerErr := errors.New("auth failure")
	provider.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", providerErr).Times(1)

	d, logs := newTestDispatcher(t, provider)

	result, err := d.Dispatch(context.Background(), message.Request{
		Destination: "validtoken123",
		Title:       "New Appointment",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, providerErr)
	assert.Contains(t, err.Error(), "New Appointment")
	assert.Equal(t, Result{}, result)
	assert.Equal(t, 1, logs.FilterMessage("failed to send notification").Len())
}

func TestDispatcher_DispatchAll(t *testing.T) {
	booked := message.Request{Destination: "doctor-token", Title: "New Appointment"}
	confirmed := message.Request{Destination: "patient-token", Title: "Appointment Confirmed"}

	t.Run("dispatches in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mockclient.NewMockPushProvider(ctrl)
		provider.EXPECT().Name().Return(client.ProviderFCM).AnyTimes()
		var tokens []string
		provider.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg client.Message) (string, error) {
				tokens = append(tokens, msg.Token)
				return fmt.Sprintf("msg-%03d", len(tokens)), nil
			}).Times(2)

		d, _ := newTestDispatcher(t, provider)

		results, err := d.DispatchAll(context.Background(), booked, confirmed)

		require.NoError(t, err)
		assert.Equal(t, []string{"doctor-token", "patient-token"}, tokens)
		assert.Equal(t, []Result{{ReceiptID: "msg-001"}, {ReceiptID: "msg-002"}}, results)
	})

	t.Run("stops at first provider failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mockclient.NewMockPushProvider(ctrl)
		provider.EXPECT().Name().Return(client.ProviderFCM).AnyTimes()
		provider.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", errors.New("network down")).Times(1)

		d, _ := newTestDispatcher(t, provider)

		results, err := d.DispatchAll(context.Background(), booked, confirmed)

		require.Error(t, err)
		assert.Empty(t, results)
	})

	t.Run("skipped requests do not stop the run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mockclient.NewMockPushProvider(ctrl)
		provider.EXPECT().Name().Return(client.ProviderFCM).AnyTimes()
		provider.EXPECT().Send(gomock.Any(), gomock.Any()).Return("msg-002", nil).Times(1)

		d, _ := newTestDispatcher(t, provider)

		results, err := d.DispatchAll(context.Background(),
			message.Request{Destination: "", Title: "New Appointment"},
			confirmed,
		)

		require.NoError(t, err)
		assert.Equal(t, []Result{{Skipped: true}, {ReceiptID: "msg-002"}}, results)
	})
}

func TestNewConfig(t *testing.T) {
	t.Setenv("DISPATCH_PLACEHOLDER_PREFIX", "TODO")

	assert.Equal(t, "TODO", NewConfig().PlaceholderPrefix)
}
