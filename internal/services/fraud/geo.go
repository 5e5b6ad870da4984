package fraud

// UnknownASN is the sentinel network operator for addresses the
// resolver has no data for.
const UnknownASN = "ASN_UNKNOWN"

// GeoResolver maps a network address to an approximate location and
// network operator. Implementations must be total: any syntactically
// valid address resolves to a value, never an error, and lookups must
// not block on I/O.
type GeoResolver interface {
	Resolve(ip string) GeoPoint
}

// StaticResolver resolves addresses against a fixed in-memory table.
// Unknown addresses degrade to {0, 0, ASN_UNKNOWN}. A live GeoIP
// database can be swapped in behind GeoResolver as long as it keeps
// the same totality guarantee.
type StaticResolver struct {
	table map[string]GeoPoint
}

// NewStaticResolver returns a resolver seeded with a small known table.
func NewStaticResolver() *StaticResolver {
	return NewStaticResolverWithTable(map[string]GeoPoint{
		"8.8.8.8":         {Lat: 37.386, Lon: -122.0838, ASN: "AS15169"},
		"1.1.1.1":         {Lat: -33.8688, Lon: 151.2093, ASN: "AS13335"},
		"142.250.183.46":  {Lat: 40.7128, Lon: -74.0060, ASN: "AS15169"},
		"52.95.110.1":     {Lat: 28.6139, Lon: 77.2090, ASN: "AS16509"},
		"185.199.108.153": {Lat: 51.5074, Lon: -0.1278, ASN: "AS54113"},
	})
}

// NewStaticResolverWithTable returns a resolver over the given table.
// The table is used as-is and must not be mutated afterwards.
func NewStaticResolverWithTable(table map[string]GeoPoint) *StaticResolver {
	if table == nil {
		table = map[string]GeoPoint{}
	}
	return &StaticResolver{table: table}
}

// Resolve looks up the address. It never fails.
func (r *StaticResolver) Resolve(ip string) GeoPoint {
	if p, ok := r.table[ip]; ok {
		return p
	}
	return GeoPoint{ASN: UnknownASN}
}
