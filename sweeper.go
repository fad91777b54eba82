package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/NGanna24/mi-gban-sub000/data"
	"github.com/NGanna24/mi-gban-sub000/enums"
	"github.com/NGanna24/mi-gban-sub000/lang"
	"github.com/NGanna24/mi-gban-sub000/matchers"
	"github.com/NGanna24/mi-gban-sub000/notifiers"
)

type alertStore interface {
	GetSweepAlerts() ([]data.SweepAlert, error)
	MarkNotified(id int, matchCount int, notifiedAt time.Time) error
}

type listingStore interface {
	GetListingsCreatedAfter(cutoff time.Time) ([]data.Listing, error)
}

type notificationStore interface {
	CreateEntry(entry data.NotificationEntry) (int, error)
}

// Sweeper runs the alert matching pass: throttle check, predicate,
// history write, push dispatch. One alert failing never aborts the sweep.
type Sweeper struct {
	alerts        alertStore
	listings      listingStore
	notifications notificationStore
	push          notifiers.PushSender
	interval      time.Duration
}

func NewSweeper(alerts alertStore, listings listingStore, notifications notificationStore, push notifiers.PushSender, interval time.Duration) *Sweeper {
	return &Sweeper{
		alerts:        alerts,
		listings:      listings,
		notifications: notifications,
		push:          push,
		interval:      interval,
	}
}

func (s *Sweeper) Start(ctx context.Context) {
	if _, err := s.Sweep(ctx); err != nil {
		slog.Error("alert sweep:", "error", err)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Info("stopping alert sweeper")
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil {
				slog.Error("alert sweep:", "error", err)
			}
		}
	}
}

// Sweep runs one full pass over the eligible alerts. Only fetching the
// alert list itself can fail the sweep; everything after that is isolated
// per alert.
func (s *Sweeper) Sweep(ctx context.Context) (data.SweepResult, error) {
	now := time.Now()
	result := data.SweepResult{StartedAt: now}

	sweepsTotal.Inc()

	alerts, err := s.alerts.GetSweepAlerts()
	if err != nil {
		return result, errors.Wrap(err, "sweep: get alerts")
	}

	for _, alert := range alerts {
		item := s.processAlert(ctx, alert, now)
		result.Items = append(result.Items, item)

		switch {
		case item.Err != nil:
			result.Failed++
			alertsFailed.Inc()
			slog.Error("sweep: alert failed", "alertID", item.AlertID, "error", item.Err)
		case item.Skipped:
			result.Skipped++
			alertsSkipped.Inc()
		default:
			result.Checked++
			alertsChecked.Inc()
			if item.MatchCount > 0 {
				result.Notified++
			}
		}
	}

	slog.Info("sweep complete",
		"checked", result.Checked,
		"skipped", result.Skipped,
		"notified", result.Notified,
		"failed", result.Failed)

	return result, nil
}

func (s *Sweeper) processAlert(ctx context.Context, alert data.SweepAlert, now time.Time) data.SweepItem {
	item := data.SweepItem{AlertID: alert.ID, UserID: alert.UserID}

	if !matchers.Due(alert.Alert, now) {
		item.Skipped = true
		return item
	}

	listings, err := s.listings.GetListingsCreatedAfter(matchers.Cutoff(alert.Alert, now))
	if err != nil {
		item.Err = errors.Wrap(err, "get candidate listings")
		return item
	}

	matched := matchers.FilterMatches(alert.Alert, listings, now)
	item.MatchCount = len(matched)
	if len(matched) == 0 {
		return item
	}

	ids := make(pq.Int64Array, 0, len(matched))
	for _, l := range matched {
		item.ListingIDs = append(item.ListingIDs, l.ID)
		ids = append(ids, int64(l.ID))
	}

	_, err = s.notifications.CreateEntry(data.NotificationEntry{
		AlertID:    alert.ID,
		MatchCount: len(matched),
		ListingIDs: ids,
		Status:     enums.NotificationUnread,
	})
	if err != nil {
		item.Err = errors.Wrap(err, "create notification entry")
		return item
	}

	if err = s.alerts.MarkNotified(alert.ID, len(matched), now); err != nil {
		item.Err = errors.Wrap(err, "mark alert notified")
		return item
	}

	// Dispatch is best effort. The history write and counters stand even
	// when the push provider rejects the send.
	title, body := pushContent(alert, matched)
	res := s.push.Send(ctx, alert.OwnerToken, title, body, map[string]string{
		"type":       "alert_match",
		"alert_id":   strconv.Itoa(alert.ID),
		"listing_id": strconv.Itoa(matched[0].ID),
	})
	if res.OK {
		notificationsSent.Inc()
	} else {
		pushFailures.Inc()
		slog.Error("sweep: push dispatch failed", "alertID", alert.ID, "error", res.Err)
	}

	return item
}

func pushContent(alert data.SweepAlert, matched []data.Listing) (string, string) {
	top := matched[0]

	if lang.Detect(top.Description) == lang.English {
		title := fmt.Sprintf("%d new listings for \"%s\"", len(matched), alert.Name)
		if len(matched) == 1 {
			title = fmt.Sprintf("New listing for \"%s\"", alert.Name)
		}
		body := fmt.Sprintf("%s in %s, %d FCFA", top.Title, top.City, top.Price)
		return title, body
	}

	title := fmt.Sprintf("%d nouvelles annonces pour \"%s\"", len(matched), alert.Name)
	if len(matched) == 1 {
		title = fmt.Sprintf("Nouvelle annonce pour \"%s\"", alert.Name)
	}
	body := fmt.Sprintf("%s à %s, %d FCFA", top.Title, top.City, top.Price)
	return title, body
}
