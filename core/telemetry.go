package core

// Banner is written once when the monitor starts
const Banner = "Ultrasonic Sensor Test Start\n"

var (
	reportDistance = []byte("Distance: ")
	reportSpeed    = []byte(" cm | Speed: ")
	reportEnd      = []byte(" cm/s\n")
)

// AppendReport appends the telemetry line for one sample to buf:
//
//	Distance: <cm> cm | Speed: <cm/s> cm/s
func AppendReport(buf []byte, distance, speed uint32) []byte {
	buf = append(buf, reportDistance...)
	buf = appendUint(buf, distance)
	buf = append(buf, reportSpeed...)
	buf = appendUint(buf, speed)
	return append(buf, reportEnd...)
}
