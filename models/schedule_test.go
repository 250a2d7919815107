package models

import "testing"

func validSchedule() WasteSchedule {
	return WasteSchedule{
		ScheduleName:      "Monday Organics",
		CollectionDay:     "monday",
		CollectionTime:    "08:00",
		Zone:              "north",
		Status:            ScheduleStatusActive,
		ReminderFrequency: DefaultReminderFrequency,
		TargetAddresses: []Address{
			{Street: "12 Elm St", City: "Springfield", State: "IL", ZipCode: "10001"},
		},
	}
}

func TestScheduleValidate(t *testing.T) {
	valid := validSchedule()
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid schedule rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*WasteSchedule)
	}{
		{"missing name", func(s *WasteSchedule) { s.ScheduleName = "" }},
		{"missing zone", func(s *WasteSchedule) { s.Zone = "" }},
		{"bad day", func(s *WasteSchedule) { s.CollectionDay = "Monday" }},
		{"bad status", func(s *WasteSchedule) { s.Status = "archived" }},
		{"frequency zero", func(s *WasteSchedule) { s.ReminderFrequency = 0 }},
		{"frequency too high", func(s *WasteSchedule) { s.ReminderFrequency = 8 }},
		{"no addresses", func(s *WasteSchedule) { s.TargetAddresses = nil }},
		{"partial address", func(s *WasteSchedule) {
			s.TargetAddresses = []Address{{Street: "12 Elm St", City: "Springfield"}}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := validSchedule()
			tc.mutate(&s)
			if err := s.Validate(); err == nil {
				t.Fatal("expected validation to fail")
			}
		})
	}
}

func TestAddressIsComplete(t *testing.T) {
	full := Address{Street: "12 Elm St", City: "Springfield", State: "IL", ZipCode: "10001"}
	if !full.IsComplete() {
		t.Error("complete address reported incomplete")
	}
	if (Address{City: "Springfield"}).IsComplete() {
		t.Error("partial address reported complete")
	}
}

func TestEnumValidators(t *testing.T) {
	if !IsValidCollectionDay("sunday") || IsValidCollectionDay("Sunday") {
		t.Error("collection days are the seven lowercase weekday names")
	}
	if !IsValidNotificationType(NotificationTypeEmergency) || IsValidNotificationType("spam") {
		t.Error("unexpected notification type validation")
	}
	if !IsValidInvoiceStatus(InvoiceStatusOverdue) || IsValidInvoiceStatus("void") {
		t.Error("unexpected invoice status validation")
	}
}
