package messages

// MQTT topics shared by the controller and the watchdog.
const (
	TopicHeartbeat    = "sunheat/status/heartbeat"
	TopicState        = "sunheat/status/state"
	TopicSensorPrefix = "sunheat/status/sensors/" // + role
	TopicOverride     = "sunheat/command/override"
	TopicAlert        = "sunheat/watchdog/alert"
)

// SensorTopic returns the per-role reading topic.
func SensorTopic(role string) string {
	return TopicSensorPrefix + role
}
