package handler

import (
	"net/http"
	"strings"

	"github.com/Gergov8/runnalog/internal/database"
	"github.com/Gergov8/runnalog/internal/middleware"
	model "github.com/Gergov8/runnalog/internal/models"
	"github.com/Gergov8/runnalog/internal/scanner"
	"github.com/Gergov8/runnalog/internal/utils"
	"github.com/gorilla/mux"
)

// AddComment commente une course
func AddComment(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.RequireAuth(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "authentication required")
		return
	}

	vars := mux.Vars(r)
	runID := vars["id"]

	var req model.AddCommentRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "comment cannot be empty")
		return
	}

	var comment model.Comment
	err = database.DB.QueryRow(r.Context(),
		`INSERT INTO comments(run_id, user_id, content, created_on)
		 VALUES($1, $2, $3, NOW())
		 RETURNING id, run_id, user_id, content, created_on`,
		runID, user.ID, req.Content,
	).Scan(&comment.ID, &comment.RunID, &comment.UserID, &comment.Content, &comment.CreatedOn)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not add comment", err)
		return
	}

	comment.Username = user.Username
	utils.Success(w, comment)
}

// GetRunComments commentaires d'une course, les plus anciens d'abord
func GetRunComments(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	runID := vars["id"]

	rows, err := database.DB.Query(r.Context(), `
		SELECT c.id, c.run_id, c.user_id, u.username, c.content, c.created_on
		FROM comments c
		INNER JOIN users u ON u.id = c.user_id
		WHERE c.run_id = $1
		ORDER BY c.created_on ASC
	`, runID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query comments", err)
		return
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		comment, err := scanner.ScanComment(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan comment row", err)
			return
		}
		comments = append(comments, *comment)
	}

	utils.Success(w, comments)
}

// DeleteComment supprime un commentaire (auteur ou admin)
func DeleteComment(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.RequireAuth(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "authentication required")
		return
	}

	vars := mux.Vars(r)
	commentID := vars["commentId"]

	var authorID string
	err = database.DB.QueryRow(r.Context(),
		`SELECT user_id FROM comments WHERE id=$1`,
		commentID,
	).Scan(&authorID)
	if err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "comment not found")
		return
	}

	if authorID != user.ID && !user.IsAdmin() {
		utils.ErrorSimple(w, http.StatusForbidden, "not allowed to delete this comment")
		return
	}

	if _, err := database.DB.Exec(r.Context(), `DELETE FROM comments WHERE id=$1`, commentID); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not delete comment", err)
		return
	}

	utils.Success(w, map[string]bool{"success": true})
}
