package helper

import (
	"encoding/json"
	"net/http"
)

type ResponseSuccess struct {
	Data interface{} `json:"data"`
}

type ResponseError struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

type PaginationMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ResponseWithPagination struct {
	Data interface{}    `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

func WriteJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func WriteSuccess(w http.ResponseWriter, data interface{}) {
	if data == nil {
		data = ""
	}
	WriteJSON(w, http.StatusOK, ResponseSuccess{
		Data: data,
	})
}

func WriteCreated(w http.ResponseWriter, data interface{}) {
	WriteJSON(w, http.StatusCreated, ResponseSuccess{
		Data: data,
	})
}

func WriteSuccessWithPagination(w http.ResponseWriter, data interface{}, total, offset, limit int) {
	WriteJSON(w, http.StatusOK, ResponseWithPagination{
		Data: data,
		Meta: PaginationMeta{
			Total:  total,
			Offset: offset,
			Limit:  limit,
		},
	})
}

func WriteBinary(w http.ResponseWriter, contentType, fileName string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func WriteError(w http.ResponseWriter, err error) {
	appErr, ok := err.(*AppError)
	if !ok {
		appErr = NewInternalServerError("Internal Server Error")
	}

	WriteJSON(w, appErr.Code, ResponseError{
		Error:   appErr.Message,
		Details: appErr.Details,
	})
}
