package businessflow

import (
	"fmt"
	"time"

	"github.com/amirphl/copydesk/app/dto"
	"github.com/amirphl/copydesk/models"
	"github.com/amirphl/copydesk/utils"
	"github.com/jinzhu/copier"
	"gorm.io/datatypes"
)

// copyOptions renders datatypes.Date columns as YYYY-MM-DD strings
var copyOptions = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: &datatypes.Date{},
			DstType: utils.ToPtr(""),
			Fn: func(src any) (any, error) {
				date, ok := src.(*datatypes.Date)
				if !ok || date == nil {
					return (*string)(nil), nil
				}
				return utils.ToPtr(utils.FormatDate(time.Time(*date))), nil
			},
		},
	},
}

func toResponse[R any, M any](model *M) (R, error) {
	var out R
	if err := copier.CopyWithOption(&out, model, copyOptions); err != nil {
		return out, fmt.Errorf("failed to map %T: %w", model, err)
	}
	return out, nil
}

func toResponses[R any, M any](rows []*M) ([]R, error) {
	out := make([]R, 0, len(rows))
	for _, row := range rows {
		item, err := toResponse[R](row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func toCampaignResponse(c *models.Campaign) (dto.CampaignResponse, error) {
	return toResponse[dto.CampaignResponse](c)
}

func toAdCopyResponse(a *models.AdCopy) (dto.AdCopyResponse, error) {
	return toResponse[dto.AdCopyResponse](a)
}

func toPerformanceResponse(p *models.PerformanceRecord) (dto.PerformanceResponse, error) {
	return toResponse[dto.PerformanceResponse](p)
}
