package background

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
)

const (
	TaskCloseExpiredCards   = "close_expired_cards"
	TaskResolveCardLocation = "resolve_card_location"
)

const jobTimeout = 30 * time.Second

// CloseExpiredCards is a background job which closes urgent cards whose end of
// day has passed
func (m *BackgroundManager) CloseExpiredCards() error {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	n, err := m.store.CloseExpiredCards(ctx, now().UTC())
	if err != nil {
		log.WithError(err).Error("close expired cards")
		sentry.CaptureException(err)
		return err
	}

	if n > 0 {
		log.WithField("closed", n).Info("expired urgent cards closed")
		if m.metrics != nil {
			m.metrics.ExpiredCards(n)
		}
	}
	return nil
}

// ResolveCardLocation is a background job which labels a card with the
// name of the place it was posted from. A failed lookup leaves the card
// without a label.
func (m *BackgroundManager) ResolveCardLocation(cardID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	logger := log.WithField("card", cardID)

	card, err := m.store.GetCard(ctx, cardID)
	if err != nil {
		logger.WithError(err).Error("load card")
		sentry.CaptureException(err)
		return err
	}

	loc, ok := card.Coordinates()
	if !ok || card.IsRemote || card.LocationName != nil {
		return nil
	}

	name, err := m.resolver.GetLocationName(ctx, loc)
	if err != nil {
		logger.WithError(err).Warn("resolve location name")
		return nil
	}

	if err := m.store.SetCardLocationName(ctx, cardID, name); err != nil {
		logger.WithError(err).Error("set card location name")
		sentry.CaptureException(err)
		return err
	}

	return nil
}
