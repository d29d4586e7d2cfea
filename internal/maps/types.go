package maps

// GeocodeRequest represents the query parameters of the geocode endpoint.
type GeocodeRequest struct {
	Query string `form:"q" validate:"required,notblank"`
}

// GeocodeResponse is the resolved coordinate returned to the frontend.
type GeocodeResponse struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// yandexResponse mirrors the relevant parts of the Yandex geocoder payload.
type yandexResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []yandexFeatureMember `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

type yandexFeatureMember struct {
	GeoObject struct {
		Name  string `json:"name"`
		Point struct {
			// Pos is "lon lat", longitude first.
			Pos string `json:"pos"`
		} `json:"Point"`
	} `json:"GeoObject"`
}
