package main

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NGanna24/mi-gban-sub000/data"
	"github.com/NGanna24/mi-gban-sub000/enums"
	"github.com/NGanna24/mi-gban-sub000/notifiers"
)

type fakeAlertStore struct {
	alerts  []data.SweepAlert
	listErr error
	marked  map[int]int
}

func (f *fakeAlertStore) GetSweepAlerts() ([]data.SweepAlert, error) {
	return f.alerts, f.listErr
}

func (f *fakeAlertStore) MarkNotified(id int, matchCount int, notifiedAt time.Time) error {
	if f.marked == nil {
		f.marked = make(map[int]int)
	}
	f.marked[id] = matchCount
	return nil
}

type fakeListingStore struct {
	listings []data.Listing
	err      error
}

func (f *fakeListingStore) GetListingsCreatedAfter(cutoff time.Time) ([]data.Listing, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]data.Listing, 0)
	for _, l := range f.listings {
		if l.CreatedAt.After(cutoff) {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeNotificationStore struct {
	entries  []data.NotificationEntry
	failOnce bool
}

func (f *fakeNotificationStore) CreateEntry(entry data.NotificationEntry) (int, error) {
	if f.failOnce {
		f.failOnce = false
		return 0, errors.New("insert failed")
	}
	f.entries = append(f.entries, entry)
	return len(f.entries), nil
}

type pushCall struct {
	token string
	title string
	body  string
}

type fakePush struct {
	calls []pushCall
	fail  bool
}

func (f *fakePush) Send(ctx context.Context, token, title, body string, payload map[string]string) notifiers.PushResult {
	f.calls = append(f.calls, pushCall{token: token, title: title, body: body})
	if f.fail {
		return notifiers.PushResult{Err: errors.New("provider rejected")}
	}
	return notifiers.PushResult{OK: true}
}

func dakarAlert(id int) data.SweepAlert {
	city := "Dakar"
	propertyType := "appartement"
	priceMax := int64(300000)
	return data.SweepAlert{
		Alert: data.Alert{
			ID:           id,
			Name:         "Appart Dakar",
			City:         &city,
			PropertyType: &propertyType,
			PriceMax:     &priceMax,
			Active:       true,
			Frequency:    enums.FrequencyDaily,
		},
		OwnerToken: "device-token",
	}
}

func sweepListing(id int, city string, created time.Time) data.Listing {
	return data.Listing{
		ID:           id,
		Title:        "Bel appartement lumineux",
		Description:  "Appartement récent avec vue sur la mer",
		City:         city,
		PropertyType: "appartement",
		Transaction:  enums.TransactionRent,
		Price:        250000,
		Status:       enums.ListingStatusAvailable,
		CreatedAt:    created,
	}
}

func newTestSweeper(alerts *fakeAlertStore, listings *fakeListingStore, notifications *fakeNotificationStore, push *fakePush) *Sweeper {
	return NewSweeper(alerts, listings, notifications, push, time.Minute)
}

func TestSweep_MatchWritesHistoryAndNotifies(t *testing.T) {
	now := time.Now()
	alerts := &fakeAlertStore{alerts: []data.SweepAlert{dakarAlert(1)}}
	listings := &fakeListingStore{listings: []data.Listing{sweepListing(7, "Dakar", now.Add(-time.Hour))}}
	notifications := &fakeNotificationStore{}
	push := &fakePush{}

	result, err := newTestSweeper(alerts, listings, notifications, push).Sweep(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Checked)
	assert.Equal(t, 1, result.Notified)
	assert.Equal(t, 0, result.Failed)

	require.Len(t, notifications.entries, 1)
	entry := notifications.entries[0]
	assert.Equal(t, 1, entry.AlertID)
	assert.Equal(t, 1, entry.MatchCount)
	assert.Equal(t, int64(7), entry.ListingIDs[0])
	assert.Equal(t, enums.NotificationUnread, entry.Status)

	assert.Equal(t, 1, alerts.marked[1])

	require.Len(t, push.calls, 1)
	assert.Equal(t, "device-token", push.calls[0].token)
	assert.NotEmpty(t, push.calls[0].title)
}

func TestSweep_CityMismatchProducesNoEntry(t *testing.T) {
	now := time.Now()
	alerts := &fakeAlertStore{alerts: []data.SweepAlert{dakarAlert(1)}}
	listings := &fakeListingStore{listings: []data.Listing{sweepListing(7, "Thies", now.Add(-time.Hour))}}
	notifications := &fakeNotificationStore{}
	push := &fakePush{}

	result, err := newTestSweeper(alerts, listings, notifications, push).Sweep(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Checked)
	assert.Equal(t, 0, result.Notified)
	assert.Empty(t, notifications.entries)
	assert.Empty(t, push.calls)
	assert.Empty(t, alerts.marked)
}

func TestSweep_ThrottledAlertIsSkipped(t *testing.T) {
	now := time.Now()
	alert := dakarAlert(1)
	alert.Frequency = enums.FrequencyWeekly
	lastNotified := now.Add(-2 * time.Hour)
	alert.LastNotifiedAt = &lastNotified

	alerts := &fakeAlertStore{alerts: []data.SweepAlert{alert}}
	listings := &fakeListingStore{listings: []data.Listing{sweepListing(7, "Dakar", now.Add(-time.Minute))}}
	notifications := &fakeNotificationStore{}
	push := &fakePush{}

	result, err := newTestSweeper(alerts, listings, notifications, push).Sweep(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 0, result.Checked)
	assert.Empty(t, notifications.entries)
	assert.Empty(t, push.calls)
}

func TestSweep_OneAlertFailingDoesNotAbortOthers(t *testing.T) {
	now := time.Now()
	alerts := &fakeAlertStore{alerts: []data.SweepAlert{dakarAlert(1), dakarAlert(2)}}
	listings := &fakeListingStore{listings: []data.Listing{sweepListing(7, "Dakar", now.Add(-time.Hour))}}
	notifications := &fakeNotificationStore{failOnce: true}
	push := &fakePush{}

	result, err := newTestSweeper(alerts, listings, notifications, push).Sweep(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Checked)
	require.Len(t, result.Items, 2)
	assert.Error(t, result.Items[0].Err)
	assert.NoError(t, result.Items[1].Err)

	// The second alert still got its history entry and push.
	require.Len(t, notifications.entries, 1)
	assert.Equal(t, 2, notifications.entries[0].AlertID)
	assert.Len(t, push.calls, 1)
}

func TestSweep_DispatchFailureKeepsHistory(t *testing.T) {
	now := time.Now()
	alerts := &fakeAlertStore{alerts: []data.SweepAlert{dakarAlert(1)}}
	listings := &fakeListingStore{listings: []data.Listing{sweepListing(7, "Dakar", now.Add(-time.Hour))}}
	notifications := &fakeNotificationStore{}
	push := &fakePush{fail: true}

	result, err := newTestSweeper(alerts, listings, notifications, push).Sweep(context.Background())
	require.NoError(t, err)

	// History and counters stand even though the provider rejected the push.
	assert.Equal(t, 0, result.Failed)
	assert.Len(t, notifications.entries, 1)
	assert.Equal(t, 1, alerts.marked[1])
}

func TestSweep_MatchCountCappedAtTwenty(t *testing.T) {
	now := time.Now()
	alerts := &fakeAlertStore{alerts: []data.SweepAlert{dakarAlert(1)}}

	catalog := make([]data.Listing, 0, 25)
	for i := 0; i < 25; i++ {
		catalog = append(catalog, sweepListing(i+1, "Dakar", now.Add(-time.Duration(i+1)*time.Minute)))
	}
	listings := &fakeListingStore{listings: catalog}
	notifications := &fakeNotificationStore{}
	push := &fakePush{}

	_, err := newTestSweeper(alerts, listings, notifications, push).Sweep(context.Background())
	require.NoError(t, err)

	require.Len(t, notifications.entries, 1)
	assert.Equal(t, 20, notifications.entries[0].MatchCount)
	assert.Len(t, notifications.entries[0].ListingIDs, 20)
	// Most recent listing leads the matched set.
	assert.Equal(t, int64(1), notifications.entries[0].ListingIDs[0])
}

func TestSweep_AlertFetchFailureFailsSweep(t *testing.T) {
	alerts := &fakeAlertStore{listErr: errors.New("db down")}
	_, err := newTestSweeper(alerts, &fakeListingStore{}, &fakeNotificationStore{}, &fakePush{}).Sweep(context.Background())
	assert.Error(t, err)
}
