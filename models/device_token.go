package models

// DeviceTokenKey is the durable local storage key holding the device unlock
// token, the opaque fingerprint returned by the fingerprint collaborator.
//
// Presence of the key is the only unlock check. The value is trusted
// blindly: it is never validated against the server and never expires, so
// anyone able to write the local database can unlock the viewer.
const DeviceTokenKey = "fingerprint"
