package wire

import (
	"cinema-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSave(r chi.Router, saveHandler *adaptor.SaveHandler) {
	r.Post("/api/saves", saveHandler.CreateSave)
	r.Delete("/api/saves", saveHandler.DeleteSave)
}
