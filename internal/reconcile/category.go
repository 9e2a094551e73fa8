package reconcile

import "github.com/sirenwatch/sirenwatch/internal/models"

// callTypeCategories maps the feed's short call-type codes onto categories.
// Unlisted codes fall through to "other".
var callTypeCategories = map[string]models.CallCategory{
	// fire
	"FA":  models.CategoryFire,
	"SF":  models.CategoryFire,
	"VF":  models.CategoryFire,
	"WF":  models.CategoryFire,
	"CF":  models.CategoryFire,
	"OF":  models.CategoryFire,
	"VEG": models.CategoryFire,
	"GAS": models.CategoryFire,

	// medical
	"ME":  models.CategoryMedical,
	"EM":  models.CategoryMedical,
	"CA":  models.CategoryMedical,
	"IFT": models.CategoryMedical,

	// rescue
	"RES": models.CategoryRescue,
	"WR":  models.CategoryRescue,
	"TR":  models.CategoryRescue,
	"CR":  models.CategoryRescue,

	// traffic
	"TC":  models.CategoryTraffic,
	"TCE": models.CategoryTraffic,
	"TCS": models.CategoryTraffic,

	// hazmat
	"HMR": models.CategoryHazmat,
	"HZ":  models.CategoryHazmat,
	"FL":  models.CategoryHazmat,
}

// CategoryForCallType resolves a feed call-type code to a category.
func CategoryForCallType(code string) models.CallCategory {
	if c, ok := callTypeCategories[code]; ok {
		return c
	}
	return models.CategoryOther
}
