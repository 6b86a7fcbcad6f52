package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bipuldey19/hungrypanda-handler/gateway"

	"github.com/sirupsen/logrus"
)

// Uploader and Gateway are the two collaborators every mutation runs
// through; satisfied by storage.Uploader and gateway.WebhookClient.
type Uploader interface {
	Upload(data []byte, name, contentType string) (string, error)
}

type Gateway interface {
	AddItem(p gateway.AddItemPayload) error
	UpdateStatus(p gateway.StatusPayload) error
	DeleteItem(p gateway.DeletePayload) error
}

type Invalidator interface {
	Invalidate()
}

// ValidationError blocks an operation before any network call.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

type ImageFile struct {
	Name        string
	ContentType string
	Data        []byte
}

type AddItemInput struct {
	Name            string
	Price           int64
	BasketPrice     *int64
	Description     string
	Ingredients     string
	Category        string
	SpiceLevel      string
	Allergens       string
	Popular         bool
	Seasonal        bool
	PortionSize     string
	PreparationTime string
	MainImage       *ImageFile
	OtherImages     []ImageFile
}

func (in *AddItemInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return &ValidationError{Msg: "item name is required"}
	}
	if in.Price <= 0 {
		return &ValidationError{Msg: "price must be greater than zero"}
	}
	if strings.TrimSpace(in.Description) == "" {
		return &ValidationError{Msg: "description is required"}
	}
	if in.MainImage == nil || len(in.MainImage.Data) == 0 {
		return &ValidationError{Msg: "main image is required"}
	}
	return nil
}

type AddItemResult struct {
	Name           string   `json:"name"`
	MainImageURL   string   `json:"mainImageUrl"`
	OtherImageURLs []string `json:"otherImageUrls"`
	SkippedImages  int      `json:"skippedImages"`
}

// ItemService orchestrates the three lifecycle flows: upload images,
// issue the webhook command, invalidate the snapshot.
type ItemService struct {
	Uploader Uploader
	Gateway  Gateway
	Cache    Invalidator
}

func NewItemService(uploader Uploader, gw Gateway, cache Invalidator) *ItemService {
	return &ItemService{Uploader: uploader, Gateway: gw, Cache: cache}
}

// AddItem validates first, so an invalid form never reaches the
// uploader or the gateway. The main image must land before the webhook
// is issued; a failed main upload aborts the whole operation so no
// item can reference an image that never made it. Secondary images are
// uploaded one at a time and failures there only skip that image.
func (s *ItemService) AddItem(in AddItemInput) (*AddItemResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	mainURL, err := s.Uploader.Upload(in.MainImage.Data, in.MainImage.Name, in.MainImage.ContentType)
	if err != nil {
		return nil, fmt.Errorf("main image upload failed: %w", err)
	}

	otherURLs := make([]string, 0, len(in.OtherImages))
	skipped := 0
	for _, img := range in.OtherImages {
		url, err := s.Uploader.Upload(img.Data, img.Name, img.ContentType)
		if err != nil {
			skipped++
			logrus.WithError(err).Warnf("skipping secondary image %q", img.Name)
			continue
		}
		otherURLs = append(otherURLs, url)
	}

	category := in.Category
	if category == "" {
		category = "general"
	}

	payload := gateway.AddItemPayload{
		Name:            in.Name,
		Price:           in.Price,
		Description:     in.Description,
		Ingredients:     in.Ingredients,
		MainImageURL:    mainURL,
		OtherImageURLs:  otherURLs,
		Category:        category,
		SpiceLevel:      in.SpiceLevel,
		Allergens:       in.Allergens,
		Popular:         in.Popular,
		Seasonal:        in.Seasonal,
		PortionSize:     in.PortionSize,
		PreparationTime: in.PreparationTime,
		BasketPrice:     in.BasketPrice,
	}
	if err := s.Gateway.AddItem(payload); err != nil {
		return nil, err
	}
	s.Cache.Invalidate()

	return &AddItemResult{
		Name:           in.Name,
		MainImageURL:   mainURL,
		OtherImageURLs: otherURLs,
		SkippedImages:  skipped,
	}, nil
}

func (s *ItemService) UpdateStatus(itemID uint, active bool, availability string) error {
	err := s.Gateway.UpdateStatus(gateway.StatusPayload{
		ItemID:       itemID,
		Active:       active,
		Availability: availability,
	})
	if err != nil {
		return err
	}
	s.Cache.Invalidate()
	return nil
}

// DeleteItem is permanent; the receiving workflow also removes the
// item's stored images, best effort.
func (s *ItemService) DeleteItem(itemID uint) error {
	if err := s.Gateway.DeleteItem(gateway.DeletePayload{ItemID: itemID}); err != nil {
		return err
	}
	s.Cache.Invalidate()
	return nil
}
