package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// AddItemPayload mirrors the body the add_item workflow expects.
type AddItemPayload struct {
	Name            string   `json:"name"`
	Price           int64    `json:"price"`
	Description     string   `json:"description"`
	Ingredients     string   `json:"ingredients"`
	MainImageURL    string   `json:"main_image_url"`
	OtherImageURLs  []string `json:"other_image_urls"`
	Category        string   `json:"category,omitempty"`
	SpiceLevel      string   `json:"spice_level,omitempty"`
	Allergens       string   `json:"allergens,omitempty"`
	Popular         bool     `json:"popular,omitempty"`
	Seasonal        bool     `json:"seasonal,omitempty"`
	PortionSize     string   `json:"portion_size,omitempty"`
	PreparationTime string   `json:"preparation_time,omitempty"`
	BasketPrice     *int64   `json:"basket_price,omitempty"`
}

type StatusPayload struct {
	ItemID       uint   `json:"item_id"`
	Active       bool   `json:"active"`
	Availability string `json:"availability,omitempty"`
}

type DeletePayload struct {
	ItemID uint `json:"item_id"`
}

// WebhookClient turns catalog commands into synchronous POSTs against
// the three configured automation endpoints. Success is solely HTTP
// 200; there are no retries and no idempotency key, so a timeout after
// the receiver acted is indistinguishable from a dropped request.
type WebhookClient struct {
	addURL    string
	statusURL string
	deleteURL string
	client    *http.Client
}

func NewWebhookClient(addURL, statusURL, deleteURL string, timeout time.Duration) *WebhookClient {
	return &WebhookClient{
		addURL:    addURL,
		statusURL: statusURL,
		deleteURL: deleteURL,
		client:    &http.Client{Timeout: timeout},
	}
}

func (w *WebhookClient) AddItem(p AddItemPayload) error {
	return w.post(w.addURL, p)
}

func (w *WebhookClient) UpdateStatus(p StatusPayload) error {
	return w.post(w.statusURL, p)
}

func (w *WebhookClient) DeleteItem(p DeletePayload) error {
	return w.post(w.deleteURL, p)
}

func (w *WebhookClient) post(url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	res, err := w.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook call failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(res.Body)
		msg := strings.TrimSpace(string(b))
		logrus.WithFields(logrus.Fields{"url": url, "status": res.StatusCode}).Warn("webhook rejected command")
		return fmt.Errorf("webhook returned %d: %s", res.StatusCode, msg)
	}
	return nil
}
