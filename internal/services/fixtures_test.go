package services_test

import (
	"docyo/internal/models"
	"docyo/internal/repository"
	"docyo/internal/repository/mocks"

	"github.com/lib/pq"
	"github.com/stretchr/testify/mock"
)

func ptr[T any](v T) *T { return &v }

type mockGateway struct {
	profiles   *mocks.MockProfileRepository
	histories  *mocks.MockMedicalHistoryRepository
	lifestyles *mocks.MockLifestyleRepository
	vitals     *mocks.MockVitalRepository
	doctors    *mocks.MockDoctorRepository
	tx         *mocks.MockTransactor
}

func newMockGateway() (*repository.Gateway, *mockGateway) {
	m := &mockGateway{
		profiles:   new(mocks.MockProfileRepository),
		histories:  new(mocks.MockMedicalHistoryRepository),
		lifestyles: new(mocks.MockLifestyleRepository),
		vitals:     new(mocks.MockVitalRepository),
		doctors:    new(mocks.MockDoctorRepository),
		tx:         new(mocks.MockTransactor),
	}
	gw := &repository.Gateway{
		Profiles:         m.profiles,
		MedicalHistories: m.histories,
		Lifestyles:       m.lifestyles,
		Vitals:           m.vitals,
		Doctors:          m.doctors,
		Tx:               m.tx,
	}
	m.tx.Gateway = gw
	return gw, m
}

func (m *mockGateway) assertExpectations(t mock.TestingT) {
	m.profiles.AssertExpectations(t)
	m.histories.AssertExpectations(t)
	m.lifestyles.AssertExpectations(t)
	m.vitals.AssertExpectations(t)
	m.doctors.AssertExpectations(t)
	m.tx.AssertExpectations(t)
}

func catalogFixture() []models.Doctor {
	return []models.Doctor{
		{ID: "1", Position: 1, Name: "Dr. Rajesh Kumar", Specialty: "Cardiologist", Location: "Apollo Hospital, New Delhi",
			Fee: 500, Rating: 4.8, Reviews: 342, Languages: pq.StringArray{"English", "Hindi"}, OnlineConsultation: true},
		{ID: "2", Position: 2, Name: "Dr. Priya Sharma", Specialty: "Dermatologist", Location: "Max Healthcare, Mumbai",
			Fee: 400, Rating: 4.7, Reviews: 285, OnlineConsultation: true},
		{ID: "3", Position: 3, Name: "Dr. Arvind Patel", Specialty: "Orthopedic Surgeon", Location: "Fortis Hospital, Bangalore",
			Fee: 600, Rating: 4.9, Reviews: 428, OnlineConsultation: false},
		{ID: "4", Position: 4, Name: "Dr. Neha Gupta", Specialty: "General Physician", Location: "AIIMS, New Delhi",
			Fee: 300, Rating: 4.6, Reviews: 512, OnlineConsultation: true},
		{ID: "5", Position: 5, Name: "Dr. Vikram Singh", Specialty: "Neurologist", Location: "Sir Ganga Ram Hospital, Delhi",
			Fee: 550, Rating: 4.8, Reviews: 198, OnlineConsultation: true},
	}
}

func ids(doctors []models.Doctor) []string {
	out := make([]string, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, d.ID)
	}
	return out
}
