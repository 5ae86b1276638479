package airmon

const versionDevelopment = "development"

// AIRMON_VERSION is set at link time for releases.
var AIRMON_VERSION = versionDevelopment
