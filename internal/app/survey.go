package app

func (s Service) Survey(req SurveyRequest) (SurveyResult, error) {
	kits, err := s.newKits(req.KitsRoot)
	if err != nil {
		return SurveyResult{}, err
	}
	return SurveyResult{Report: kits.Survey()}, nil
}
