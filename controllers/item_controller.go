package controllers

import (
	"io"
	"mime/multipart"
	"strconv"

	"github.com/bipuldey19/hungrypanda-handler/entity"
	"github.com/bipuldey19/hungrypanda-handler/pkg/resp"
	"github.com/bipuldey19/hungrypanda-handler/services"
	"github.com/bipuldey19/hungrypanda-handler/utils"

	"github.com/gin-gonic/gin"
)

type ItemController struct {
	Items    *services.ItemService
	Catalog  *services.CatalogService
	Sessions *services.SessionStore
}

func NewItemController(items *services.ItemService, catalog *services.CatalogService, sessions *services.SessionStore) *ItemController {
	return &ItemController{Items: items, Catalog: catalog, Sessions: sessions}
}

// POST /items — multipart form with text fields plus main_image and
// optional repeated other_images files.
func (ctl *ItemController) Create(c *gin.Context) {
	price, _ := strconv.ParseInt(c.PostForm("price"), 10, 64)

	var basketPrice *int64
	if v := c.PostForm("basket_price"); v != "" {
		bp, err := strconv.ParseInt(v, 10, 64)
		if err != nil || bp < 0 {
			resp.BadRequest(c, "basket_price must be a non-negative number")
			return
		}
		basketPrice = &bp
	}

	in := services.AddItemInput{
		Name:            c.PostForm("name"),
		Price:           price,
		BasketPrice:     basketPrice,
		Description:     c.PostForm("description"),
		Ingredients:     c.PostForm("ingredients"),
		Category:        c.PostForm("category"),
		SpiceLevel:      c.PostForm("spice_level"),
		Allergens:       c.PostForm("allergens"),
		Popular:         c.PostForm("popular") == "true",
		Seasonal:        c.PostForm("seasonal") == "true",
		PortionSize:     c.PostForm("portion_size"),
		PreparationTime: c.PostForm("preparation_time"),
	}

	if fh, err := c.FormFile("main_image"); err == nil {
		img, err := readImage(fh)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		in.MainImage = img
	}
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["other_images"] {
			img, err := readImage(fh)
			if err != nil {
				resp.ServerError(c, err)
				return
			}
			in.OtherImages = append(in.OtherImages, *img)
		}
	}

	result, err := ctl.Items.AddItem(in)
	if err != nil {
		if services.IsValidationError(err) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.BadGateway(c, err)
		return
	}
	resp.Created(c, result)
}

// GET /items/:id — the expandable full-metadata view, served from the
// current snapshot.
func (ctl *ItemController) Get(c *gin.Context) {
	id := itemID(c)

	items, err := ctl.Catalog.ListItems()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	for i := range items {
		if items[i].ID == id {
			resp.OK(c, items[i])
			return
		}
	}
	resp.NotFound(c, "item not found")
}

// PATCH /items/:id/status
func (ctl *ItemController) UpdateStatus(c *gin.Context) {
	id := itemID(c)

	var req struct {
		Active       *bool  `json:"active" binding:"required"`
		Availability string `json:"availability"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Items.UpdateStatus(id, *req.Active, req.Availability); err != nil {
		resp.BadGateway(c, err)
		return
	}
	resp.OK(c, gin.H{"itemId": id, "active": *req.Active})
}

// POST /items/:id/delete — first step, only marks the pending
// confirmation for this one item. No gateway call happens here.
func (ctl *ItemController) RequestDelete(c *gin.Context) {
	id := itemID(c)
	sess := utils.CurrentSession(c)

	ctl.Sessions.SetUIState(sess.ID, id, entity.UIStateConfirmDelete)
	resp.OK(c, gin.H{"itemId": id, "uiState": entity.UIStateConfirmDelete.String()})
}

// POST /items/:id/delete/cancel
func (ctl *ItemController) CancelDelete(c *gin.Context) {
	id := itemID(c)
	sess := utils.CurrentSession(c)

	ctl.Sessions.SetUIState(sess.ID, id, entity.UIStateNone)
	resp.OK(c, gin.H{"itemId": id, "uiState": entity.UIStateNone.String()})
}

// POST /items/:id/delete/confirm — issues exactly one delete command,
// and only when the confirmation is actually pending.
func (ctl *ItemController) ConfirmDelete(c *gin.Context) {
	id := itemID(c)
	sess := utils.CurrentSession(c)

	if ctl.Sessions.UIState(sess.ID, id) != entity.UIStateConfirmDelete {
		resp.BadRequest(c, "no pending delete confirmation for this item")
		return
	}

	if err := ctl.Items.DeleteItem(id); err != nil {
		resp.BadGateway(c, err)
		return
	}
	ctl.Sessions.SetUIState(sess.ID, id, entity.UIStateNone)
	resp.OK(c, gin.H{"itemId": id, "deleted": true})
}

// POST /items/:id/details — toggles the expanded card view.
func (ctl *ItemController) ToggleDetails(c *gin.Context) {
	id := itemID(c)
	sess := utils.CurrentSession(c)

	state := ctl.Sessions.ToggleDetails(sess.ID, id)
	resp.OK(c, gin.H{"itemId": id, "uiState": state.String()})
}

func itemID(c *gin.Context) uint {
	id, _ := strconv.Atoi(c.Param("id"))
	return uint(id)
}

func readImage(fh *multipart.FileHeader) (*services.ImageFile, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &services.ImageFile{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
