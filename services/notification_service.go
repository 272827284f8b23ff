package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zagross-express/zagross-admin-api/config"
	"github.com/zagross-express/zagross-admin-api/models"
)

// Notification event types the customer app understands.
const (
	EventPaidInProcess = "paid_in_process"
	EventReadyPickup   = "ready_pickup"
)

// NotifierInterface dispatches customer notifications. Dispatch is
// async and best-effort: calls return before the push endpoint is
// contacted, failures are logged and never surfaced to the caller,
// so a slow or dead push endpoint can never block a status transition.
type NotifierInterface interface {
	NotifyOrderEvent(userID, orderID, eventType string)
	Broadcast(title, body string)
}

// PushNotifier posts events to the external push function and, when a
// customer has an email on file, mirrors the event over email.
type PushNotifier struct {
	pushURL    string
	httpClient *http.Client
	email      EmailInterface
	wg         sync.WaitGroup
}

var notifierInstance NotifierInterface

// InitNotifier initializes the notification dispatcher
func InitNotifier(cfg *config.Config, email EmailInterface) NotifierInterface {
	notifierInstance = &PushNotifier{
		pushURL: cfg.PushFunctionURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		email: email,
	}
	return notifierInstance
}

// GetNotifier returns the initialized notifier instance
func GetNotifier() NotifierInterface {
	return notifierInstance
}

// SetNotifier sets the notifier instance (primarily for testing)
func SetNotifier(n NotifierInterface) {
	notifierInstance = n
}

// NotifyOrderEvent tells the customer their order changed. The push
// and email calls run in the background so the handler that triggered
// them can respond immediately.
func (n *PushNotifier) NotifyOrderEvent(userID, orderID, eventType string) {
	n.dispatch(func() {
		n.post(map[string]string{
			"user_id":  userID,
			"order_id": orderID,
			"type":     eventType,
		})
		n.emailOrderEvent(userID, orderID, eventType)
	})
}

// Broadcast sends a free-form push to all registered devices.
func (n *PushNotifier) Broadcast(title, body string) {
	n.dispatch(func() {
		n.post(map[string]string{
			"title": title,
			"body":  body,
		})
	})
}

func (n *PushNotifier) dispatch(fn func()) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		fn()
	}()
}

// Wait blocks until every in-flight dispatch has finished.
func (n *PushNotifier) Wait() {
	n.wg.Wait()
}

func (n *PushNotifier) post(payload map[string]string) {
	if n.pushURL == "" {
		log.Debug().Msg("Push endpoint not configured, skipping notification")
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Warn().Err(err).Msg("Push notification failed")
		return
	}

	resp, err := n.httpClient.Post(n.pushURL, "application/json", bytes.NewReader(data))
	if err != nil {
		log.Warn().Err(err).Msg("Push notification failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Warn().Int("status", resp.StatusCode).Msg("Push notification rejected")
	}
}

func (n *PushNotifier) emailOrderEvent(userID, orderID, eventType string) {
	if n.email == nil {
		return
	}

	db := config.GetDB()
	if db == nil {
		return
	}

	var profile models.Profile
	if err := db.First(&profile, "id = ?", userID).Error; err != nil || profile.Email == nil || *profile.Email == "" {
		return
	}

	short := orderID
	if len(short) > 8 {
		short = short[:8]
	}

	var subject, body string
	switch eventType {
	case EventPaidInProcess:
		subject = fmt.Sprintf("Order #%s is paid and in process", short)
		body = "We received your payment and started purchasing your order."
	case EventReadyPickup:
		subject = fmt.Sprintf("Order #%s is ready for pickup", short)
		body = "Your order arrived and is ready for pickup at our office."
	default:
		return
	}

	if err := n.email.SendEmail(*profile.Email, subject, body); err != nil {
		log.Warn().Err(err).Str("order_id", orderID).Msg("Notification email failed")
	}
}
