package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/divinoviana/planoespecialindividualizado/models"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	httpErr := &HTTPError{StatusCode: resp.StatusCode(), status: ErrUnexpectedStatus}
	if sentinel, ok := statusErrors[resp.StatusCode()]; ok {
		httpErr.status = sentinel
	}

	body := resp.Body()
	var decoded models.ErrorResponse
	if err := json.Unmarshal(body, &decoded); err == nil && (decoded.Kind != "" || decoded.Error != "") {
		httpErr.Kind = decoded.Kind
		httpErr.Message = decoded.Error
		httpErr.Fields = decoded.Fields
		return httpErr
	}

	httpErr.Message = strings.TrimSpace(string(body))
	return httpErr
}
