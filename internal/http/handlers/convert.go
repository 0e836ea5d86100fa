package handlers

import (
	"errors"
	"strings"
	"time"

	"blood-donor-connector/internal/domain"
)

func (r registerDonorRequest) toModel() (domain.Donor, error) {
	d := domain.Donor{
		Name:      r.Name,
		BloodType: domain.BloodType(r.BloodType),
		Phone:     r.Phone,
		Location:  r.Location,
	}
	if r.LastDonation != nil && strings.TrimSpace(*r.LastDonation) != "" {
		t, err := time.Parse(dateLayout, strings.TrimSpace(*r.LastDonation))
		if err != nil {
			return domain.Donor{}, errors.New("invalid last_donation")
		}
		d.LastDonation = &t
	}
	return d, nil
}

func (r submitRequestRequest) toModel() domain.Request {
	return domain.Request{
		Hospital:  r.Hospital,
		BloodType: domain.BloodType(r.BloodType),
		Units:     r.Units,
		Urgency:   domain.Urgency(strings.TrimSpace(r.Urgency)),
		Location:  r.Location,
	}
}

func donorToResponse(d domain.Donor) donorDTO {
	out := donorDTO{
		ID:        d.ID,
		Name:      d.Name,
		BloodType: string(d.BloodType),
		Phone:     d.Phone,
		Location:  d.Location,
		Available: d.Available,
		CreatedAt: d.CreatedAt,
	}
	if d.LastDonation != nil {
		s := d.LastDonation.Format(dateLayout)
		out.LastDonation = &s
	}
	return out
}

func donorsToResponse(list []domain.Donor) []donorDTO {
	out := make([]donorDTO, 0, len(list))
	for _, d := range list {
		out = append(out, donorToResponse(d))
	}
	return out
}

func requestToResponse(q domain.Request) requestDTO {
	return requestDTO{
		ID:        q.ID,
		Hospital:  q.Hospital,
		BloodType: string(q.BloodType),
		Units:     q.Units,
		Urgency:   string(q.Urgency),
		Location:  q.Location,
		Status:    string(q.Status),
		CreatedAt: q.CreatedAt,
	}
}

func requestsToResponse(list []domain.Request) []requestDTO {
	out := make([]requestDTO, 0, len(list))
	for _, q := range list {
		out = append(out, requestToResponse(q))
	}
	return out
}

func hospitalToResponse(h domain.Hospital) hospitalDTO {
	return hospitalDTO{ID: h.ID, Name: h.Name, Code: h.Code, Location: h.Location}
}

func hospitalsToResponse(list []domain.Hospital) []hospitalDTO {
	out := make([]hospitalDTO, 0, len(list))
	for _, h := range list {
		out = append(out, hospitalToResponse(h))
	}
	return out
}

func respondResultToResponse(res domain.ResponseResult) respondResponse {
	out := respondResponse{
		Request: requestToResponse(res.Request),
		DonorID: res.DonorID,
	}
	if res.Hospital != nil {
		h := hospitalToResponse(*res.Hospital)
		out.Hospital = &h
	}
	return out
}

func statsToResponse(s domain.Stats) statsDTO {
	return statsDTO{
		Donors:     s.Donors,
		Requests:   s.Requests,
		Hospitals:  s.Hospitals,
		LivesSaved: s.LivesSaved,
	}
}
