package consts

const (
	ApplicationName    = "Bayaaz Server"
	ApplicationVersion = "1.0.0"
)

// ExportFormatVersion is stamped into every data export payload.
const ExportFormatVersion = "1.0"
