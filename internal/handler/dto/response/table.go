package response

import (
	"reservation-book/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type TableResponse struct {
	ID    int64 `json:"id"`
	Seats int   `json:"seats"`
}

type PartySizeChoiceResponse struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

func FromTableViews(views []*queries.TableView) ([]TableResponse, error) {
	out := make([]TableResponse, 0, len(views))
	if err := copier.Copy(&out, views); err != nil {
		return nil, err
	}
	return out, nil
}

func FromPartySizeChoices(choices []queries.PartySizeChoice) ([]PartySizeChoiceResponse, error) {
	out := make([]PartySizeChoiceResponse, 0, len(choices))
	if err := copier.Copy(&out, choices); err != nil {
		return nil, err
	}
	return out, nil
}
