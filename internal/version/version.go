package version

// Version is overridden at link time with -ldflags "-X alnedit/internal/version.Version=...".
var Version = "0.4.0"
