package palette

// DefaultZone is the registry entry used when no zone is requested. Its
// outputs use the bare "tileset" basename instead of a zone prefix.
const DefaultZone = "default"

// builtin is the reference palette table: the default dark dungeon theme
// plus one palette per game zone.
var builtin = map[string]Palette{
	DefaultZone: {
		FloorBase:      {58, 48, 42},
		FloorLight:     {72, 60, 52},
		FloorDark:      {42, 35, 30},
		FloorAccent:    {65, 54, 46},
		FloorHighlight: {78, 66, 58},
		WallBase:       {85, 82, 88},
		WallLight:      {105, 100, 108},
		WallDark:       {62, 58, 68},
		WallMortar:     {48, 45, 52},
		WallTop:        {115, 110, 120},
	},
	"catacombs": {
		FloorBase:      {45, 42, 50},
		FloorLight:     {55, 52, 62},
		FloorDark:      {35, 32, 40},
		FloorAccent:    {50, 47, 58},
		FloorHighlight: {62, 58, 70},
		WallBase:       {70, 65, 80},
		WallLight:      {85, 80, 95},
		WallDark:       {50, 45, 58},
		WallMortar:     {40, 38, 48},
		WallTop:        {90, 85, 100},
	},
	"library": {
		FloorBase:      {65, 58, 45},
		FloorLight:     {78, 70, 55},
		FloorDark:      {52, 45, 35},
		FloorAccent:    {72, 64, 50},
		FloorHighlight: {85, 77, 62},
		WallBase:       {95, 88, 75},
		WallLight:      {110, 103, 90},
		WallDark:       {75, 68, 55},
		WallMortar:     {60, 53, 40},
		WallTop:        {120, 113, 100},
	},
	"crystal_caves": {
		FloorBase:      {35, 55, 75},
		FloorLight:     {45, 70, 95},
		FloorDark:      {25, 40, 55},
		FloorAccent:    {40, 62, 85},
		FloorHighlight: {55, 80, 105},
		WallBase:       {55, 75, 95},
		WallLight:      {70, 90, 115},
		WallDark:       {40, 55, 70},
		WallMortar:     {30, 45, 60},
		WallTop:        {85, 105, 130},
	},
	"forge_depths": {
		FloorBase:      {75, 45, 35},
		FloorLight:     {90, 55, 45},
		FloorDark:      {60, 35, 25},
		FloorAccent:    {82, 50, 40},
		FloorHighlight: {100, 65, 55},
		WallBase:       {95, 65, 55},
		WallLight:      {115, 80, 70},
		WallDark:       {75, 50, 40},
		WallMortar:     {60, 40, 30},
		WallTop:        {130, 90, 80},
	},
}

// Builtin returns a registry preloaded with the default palette and the
// reference zone palettes.
func Builtin() *Registry {
	r := NewRegistry()
	for name, p := range builtin {
		// The table is complete by construction.
		if err := r.Register(name, p); err != nil {
			panic(err)
		}
	}
	return r
}
