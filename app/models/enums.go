package models

// PaymentStatus defines the status of a student fee payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentOverdue   PaymentStatus = "overdue"
	PaymentCancelled PaymentStatus = "cancelled"
)

// PaymentStatuses lists every valid payment status.
var PaymentStatuses = []PaymentStatus{PaymentPending, PaymentPaid, PaymentOverdue, PaymentCancelled}

// PaymentMethod defines how a payment was made.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodCard         PaymentMethod = "card"
	MethodUPI          PaymentMethod = "upi"
	MethodBankTransfer PaymentMethod = "bank_transfer"
)

// PaymentMethods lists every valid payment method.
var PaymentMethods = []PaymentMethod{MethodCash, MethodCard, MethodUPI, MethodBankTransfer}

// TestType defines the kind of assessment a test row records.
type TestType string

const (
	TestQuiz       TestType = "quiz"
	TestMidterm    TestType = "midterm"
	TestFinal      TestType = "final"
	TestAssignment TestType = "assignment"
	TestProject    TestType = "project"
)

// TestTypes lists every valid test type.
var TestTypes = []TestType{TestQuiz, TestMidterm, TestFinal, TestAssignment, TestProject}

// QueryType defines how a conversation query arrived.
type QueryType string

const (
	QueryText  QueryType = "text"
	QueryAudio QueryType = "audio"
)

// ContentType defines the category of an unstructured student note.
type ContentType string

const (
	ContentNote        ContentType = "note"
	ContentBehavior    ContentType = "behavior"
	ContentAchievement ContentType = "achievement"
	ContentConcern     ContentType = "concern"
)

// ContentTypes lists every valid note content type.
var ContentTypes = []ContentType{ContentNote, ContentBehavior, ContentAchievement, ContentConcern}
