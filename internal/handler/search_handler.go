package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"CampusNav-App/internal/domain/model"
	"CampusNav-App/internal/usecase"
)

// SearchHandler は検索APIのハンドラー
type SearchHandler struct {
	searchUseCase usecase.SearchUseCase
}

// NewSearchHandler は新しいSearchHandlerインスタンスを作成
func NewSearchHandler(searchUseCase usecase.SearchUseCase) *SearchHandler {
	return &SearchHandler{searchUseCase: searchUseCase}
}

// GetSearch は検索クエリを処理するエンドポイント
// GET /api/search?q=...
func (h *SearchHandler) GetSearch(c *gin.Context) {
	outcome, err := h.searchUseCase.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "検索の実行に失敗しました",
			"details": err.Error(),
		})
		return
	}
	if outcome == nil {
		outcome = &model.SearchOutcome{Kind: model.SearchOutcomeNoResults}
	}
	c.JSON(http.StatusOK, outcome)
}

// selectRequest 検索結果選択のリクエストボディ。
// 屋内コード選択はcodeを、屋外結果選択はplaceを指定する
type selectRequest struct {
	Code  string             `json:"code"`
	Place *model.PlaceResult `json:"place"`
}

// PostSelect は検索結果の選択を処理するエンドポイント
// POST /api/search/select
func (h *SearchHandler) PostSelect(c *gin.Context) {
	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	if req.Code != "" {
		selection, err := h.searchUseCase.SelectIndoorResult(req.Code)
		if err != nil {
			if errors.Is(err, model.ErrLocationNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, selection)
		return
	}

	if req.Place == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "codeまたはplaceを指定してください"})
		return
	}
	c.JSON(http.StatusOK, h.searchUseCase.SelectOutdoorResult(*req.Place))
}

// DeleteSearch は検索状態を初期状態に戻すエンドポイント
// DELETE /api/search
func (h *SearchHandler) DeleteSearch(c *gin.Context) {
	h.searchUseCase.Reset()
	c.Status(http.StatusNoContent)
}
