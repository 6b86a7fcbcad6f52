package controllers

import (
	"strconv"

	"github.com/bipuldey19/hungrypanda-handler/pkg/resp"
	"github.com/bipuldey19/hungrypanda-handler/repository"

	"github.com/gin-gonic/gin"
)

type KBController struct {
	Repo *repository.CatalogRepository
}

func NewKBController(repo *repository.CatalogRepository) *KBController {
	return &KBController{Repo: repo}
}

// GET /kb?category=
func (ctl *KBController) List(c *gin.Context) {
	entries, err := ctl.Repo.ListKB()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	if category := c.Query("category"); category != "" {
		filtered := entries[:0]
		for _, e := range entries {
			if e.Meta.Category == category {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}
	resp.OK(c, gin.H{"entries": entries})
}

// GET /kb/:id
func (ctl *KBController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	entry, err := ctl.Repo.GetKB(uint(id))
	if err != nil {
		resp.NotFound(c, "article not found")
		return
	}
	resp.OK(c, entry)
}
