// pkg/cron/offer_digest.go
package cron

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/robfig/cron/v3"

	"reisemlak_backend/internal/model"
	"reisemlak_backend/internal/repository"
	"reisemlak_backend/pkg/email"
	"reisemlak_backend/pkg/logger"
)

// DigestSender okunmamış teklif özetini gönderir
type DigestSender interface {
	SendUnreadOfferDigest(data email.OfferDigestData) error
}

// InitOfferDigestCron her gün (varsayılan 19:00) okunmamış teklifleri e-postayla bildirir
func InitOfferDigestCron(schedule string, offers repository.OfferRepository, sender DigestSender) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		if err := SendOfferDigest(context.Background(), offers, sender, time.Now()); err != nil {
			logger.Errorf("Could not send offer digest: %v", err)
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}

// SendOfferDigest okunmamış teklif yoksa e-posta göndermez
func SendOfferDigest(ctx context.Context, offers repository.OfferRepository, sender DigestSender, now time.Time) error {
	all, err := offers.Load(ctx)
	if err != nil {
		return err
	}

	data, ok := BuildOfferDigest(all, now)
	if !ok {
		logger.Debugf("No unread offers, skipping digest")
		return nil
	}

	if err := sender.SendUnreadOfferDigest(data); err != nil {
		return err
	}

	logger.Infof("Offer digest sent (%d unread)", data.UnreadCount)
	return nil
}

// BuildOfferDigest "yeni" durumundaki teklifleri en yeniden eskiye dizer
func BuildOfferDigest(offers []model.Offer, now time.Time) (email.OfferDigestData, bool) {
	var unread []model.Offer
	for _, o := range offers {
		if o.Status == model.OfferStatusNew {
			unread = append(unread, o)
		}
	}
	if len(unread) == 0 {
		return email.OfferDigestData{}, false
	}

	slices.SortStableFunc(unread, func(a, b model.Offer) int {
		return cmp.Compare(b.ID, a.ID)
	})

	items := make([]email.OfferDigestItem, 0, len(unread))
	for _, o := range unread {
		items = append(items, email.OfferDigestItem{
			PropertyTitle: o.PropertyTitle,
			CustomerName:  o.CustomerName,
			CustomerPhone: o.CustomerPhone,
			OfferAmount:   email.FormatAmount(o.OfferAmount, o.Currency),
			CreatedAt:     o.CreatedAt,
		})
	}

	return email.OfferDigestData{
		Date:        now,
		UnreadCount: len(unread),
		Offers:      items,
	}, true
}
