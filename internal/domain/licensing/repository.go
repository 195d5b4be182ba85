package licensing

import (
	"context"

	"github.com/google/uuid"
)

// LicenseRepository is the license store. FindLicense returns (nil, nil) when
// no license row exists for the pair; "no license" is not an error.
type LicenseRepository interface {
	Save(ctx context.Context, license *ModuleLicense) error
	FindLicense(ctx context.Context, tenantID, moduleID uuid.UUID) (*ModuleLicense, error)
	FindAll(ctx context.Context) ([]ModuleLicense, error)
}
