package response

import (
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Money leaves the API as a fixed two-decimal string.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(decimal.Decimal).StringFixed(2), nil
			},
		},
	},
}

// copyInto fills dst from the exported fields and zero-arg getters of src.
func copyInto(dst, src any) error {
	return copier.CopyWithOption(dst, src, copyOption)
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
