package canister

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type Config struct {
	APIKey     string `envconfig:"CANISTER_API_KEY"`
	URLForNFTs string `envconfig:"CANISTER_URL_NFTS"`
}

func (c Config) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, &c,
		validation.Field(&c.APIKey),
		validation.Field(&c.URLForNFTs, validation.Required, is.URL),
	)
}
