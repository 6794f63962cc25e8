package scenario

// Builtin returns the scenarios that are run when no scenario file is given.
func Builtin() File {
	return File{
		Scenarios: []Scenario{
			{
				Name:      "stack-end-to-end",
				Container: KindStack,
				Capacity:  3,
				Steps: []Step{
					insert(OpPush, 3),
					insert(OpPush, 5),
					insert(OpPush, 7),
					rejected(OpPush, 1),
					remove(OpPop, 7),
					remove(OpPop, 5),
					remove(OpPop, 3),
					empty(OpPop),
				},
			},
			{
				Name:      "queue-end-to-end",
				Container: KindQueue,
				Capacity:  3,
				Steps: []Step{
					insert(OpEnqueue, 2),
					insert(OpEnqueue, 4),
					insert(OpEnqueue, 6),
					rejected(OpEnqueue, 8),
					remove(OpDequeue, 2),
					remove(OpDequeue, 4),
					remove(OpDequeue, 6),
					empty(OpDequeue),
				},
			},
			{
				Name:      "queue-wraparound",
				Container: KindQueue,
				Capacity:  3,
				Steps: []Step{
					insert(OpEnqueue, 'A'),
					insert(OpEnqueue, 'B'),
					insert(OpEnqueue, 'C'),
					remove(OpDequeue, 'A'),
					insert(OpEnqueue, 'D'),
					rejected(OpEnqueue, 'E'),
					remove(OpDequeue, 'B'),
					remove(OpDequeue, 'C'),
					remove(OpDequeue, 'D'),
					empty(OpDequeue),
				},
			},
			{
				Name:      "stack-zero-capacity",
				Container: KindStack,
				Capacity:  0,
				Steps: []Step{
					empty(OpPop),
					rejected(OpPush, 1),
					empty(OpPop),
				},
			},
			{
				Name:      "queue-zero-capacity",
				Container: KindQueue,
				Capacity:  0,
				Steps: []Step{
					empty(OpDequeue),
					rejected(OpEnqueue, 1),
					empty(OpDequeue),
				},
			},
		},
	}
}

func insert(op Op, value int) Step {
	return Step{Op: op, Value: value}
}

func rejected(op Op, value int) Step {
	return Step{Op: op, Value: value, Fails: true}
}

func remove(op Op, want int) Step {
	return Step{Op: op, Want: &want}
}

func empty(op Op) Step {
	return Step{Op: op, Fails: true}
}
