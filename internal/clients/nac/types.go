package nac

type Device struct {
	PhoneNumber             string `json:"phoneNumber"`
	NetworkAccessIdentifier string `json:"networkAccessIdentifier,omitempty"`
	IPv4Address             string `json:"ipv4Address,omitempty"`
	IPv6Address             string `json:"ipv6Address,omitempty"`
	Status                  string `json:"status,omitempty"`
}

type DeviceLocation struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Elevation *float64 `json:"elevation,omitempty"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
}

type CreateSessionRequest struct {
	PhoneNumber string
	// Profile is the gateway QoS profile name, e.g. QOS_E for emergency.
	Profile     string
	Duration    int
	ServiceIPv4 string
}

type Session struct {
	ID         string `json:"id"`
	QoSProfile string `json:"qosProfile,omitempty"`
	Duration   int    `json:"duration,omitempty"`
	Status     string `json:"qosStatus,omitempty"`
}
