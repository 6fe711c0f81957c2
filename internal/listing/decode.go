package listing

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"tariff_tracker/internal/entity"
)

var ErrInvalidPayload = errors.New("invalid finding api payload")

// DecodeItems extracts items from a findItems*Response payload.
// A bare JSON array of items is accepted as well.
func DecodeItems(body []byte) ([]entity.ListingItem, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: malformed json", ErrInvalidPayload)
	}
	doc := gjson.ParseBytes(body)

	items := doc
	if doc.IsObject() {
		var resp gjson.Result
		doc.ForEach(func(key, value gjson.Result) bool {
			if strings.HasSuffix(key.String(), "Response") {
				resp = value.Get("0")
				return false
			}
			return true
		})
		if !resp.Exists() {
			return nil, fmt.Errorf("%w: no response object", ErrInvalidPayload)
		}
		if ack := resp.Get("ack.0").String(); ack == "Failure" {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, resp.Get("errorMessage.0.error.0.message.0").String())
		}
		items = resp.Get("searchResult.0.item")
		if !items.Exists() {
			return []entity.ListingItem{}, nil
		}
	}
	if !items.IsArray() {
		return nil, fmt.Errorf("%w: item list expected", ErrInvalidPayload)
	}

	out := make([]entity.ListingItem, 0, len(items.Array()))
	if err := json.Unmarshal([]byte(items.Raw), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return out, nil
}
