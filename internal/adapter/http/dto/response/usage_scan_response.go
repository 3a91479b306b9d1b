package response

type UsageScanResponse struct {
	Scanned int `json:"scanned"`
}
