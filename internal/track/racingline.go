package track

// EmitRacingLine hands every patch and the one after it to sink, in strip
// order. The last patch is paired with the first whether or not the strip
// is closed.
func (s *Strip) EmitRacingLine(sink RacingLineSink) {
	n := len(s.patches)
	for i, p := range s.patches {
		sink.AddRacingLine(p, s.patches[(i+1)%n])
	}
}
