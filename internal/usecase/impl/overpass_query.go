package impl

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"servicelocator/internal/domain/entity"
)

// discoveryPlaceFilters are the tag selectors of a service centre.
var discoveryPlaceFilters = []string{
	`["shop"="car_repair"]`,
	`["amenity"="car_repair"]`,
	`["office"="car_dealership"]`,
}

var discoveryElementTypes = []string{"node", "way", "relation"}

var qlStringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// BuildDiscoveryQuery renders the Overpass QL union of repair shops, repair
// amenities and dealerships whose brand contains brand, case-insensitively.
// Regex metacharacters in the brand match literally.
func BuildDiscoveryQuery(brand entity.BrandFilter, origin entity.Coordinate, radius int) string {
	brandFilter := fmt.Sprintf(`["brand"~"%s",i]`, qlStringEscaper.Replace(regexp.QuoteMeta(brand.String())))
	around := fmt.Sprintf("(around:%d,%s,%s)", radius, formatDegrees(origin.Lat), formatDegrees(origin.Lon))

	var b strings.Builder
	b.WriteString("[out:json][timeout:60];\n(\n")
	for _, filter := range discoveryPlaceFilters {
		for _, elementType := range discoveryElementTypes {
			b.WriteString("  ")
			b.WriteString(elementType)
			b.WriteString(filter)
			b.WriteString(brandFilter)
			b.WriteString(around)
			b.WriteString(";\n")
		}
	}
	b.WriteString(");\nout center;")

	return b.String()
}

// BuildNearestQuery renders the brand-agnostic repair shop lookup.
func BuildNearestQuery(origin entity.Coordinate, radius int) string {
	return fmt.Sprintf(`[out:json];node(around:%d,%s,%s)["shop"="car_repair"];out;`,
		radius, formatDegrees(origin.Lat), formatDegrees(origin.Lon))
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
