package kernel

type JobTitle string

type JobDescription string

type JobLocation string
