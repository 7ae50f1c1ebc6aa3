package routing

import "fmt"

// DecodePolyline decodes an encoded polyline string into coordinates using
// Google's polyline algorithm with 1e-5 precision.
func DecodePolyline(encoded string) ([]LatLng, error) {
	if encoded == "" {
		return nil, nil
	}

	var points []LatLng
	var lat, lng int64
	index := 0

	for index < len(encoded) {
		deltaLat, next, err := decodeVarint(encoded, index)
		if err != nil {
			return nil, err
		}
		index = next

		deltaLng, next, err := decodeVarint(encoded, index)
		if err != nil {
			return nil, err
		}
		index = next

		lat += deltaLat
		lng += deltaLng
		points = append(points, LatLng{
			Latitude:  float64(lat) / 1e5,
			Longitude: float64(lng) / 1e5,
		})
	}

	return points, nil
}

func decodeVarint(encoded string, index int) (int64, int, error) {
	var result int64
	var shift uint

	for {
		if index >= len(encoded) {
			return 0, index, fmt.Errorf("truncated polyline at offset %d", index)
		}
		b := int64(encoded[index]) - 63
		if b < 0 {
			return 0, index, fmt.Errorf("invalid polyline character at offset %d", index)
		}
		index++
		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			break
		}
	}

	if result&1 != 0 {
		return ^(result >> 1), index, nil
	}
	return result >> 1, index, nil
}
