package codebook

// Standard domain codebook tables, one entry per assigned u16 code.
// The seven tables below are the v1.1 standard registry contents;
// custom domains register through RegisterDomain at startup.

// NAV-1: navigation and spatial positioning (104 entries)
var navEntries = []DomainEntry{
	{Code: 0x0000, Mnemonic: "POSITION_3D", ValueTypeSig: "ARRAY<FLOAT32,3>", Unit: "m", Description: "3D position (x, y, z)"},
	{Code: 0x0001, Mnemonic: "POSITION_2D", ValueTypeSig: "ARRAY<FLOAT32,2>", Unit: "m", Description: "2D position (x, y)"},
	{Code: 0x0002, Mnemonic: "HEADING", ValueTypeSig: "FLOAT32", Unit: "rad", Description: "Heading angle from North"},
	{Code: 0x0003, Mnemonic: "ORIENTATION_QUAT", ValueTypeSig: "ARRAY<FLOAT32,4>", Description: "Quaternion (w, x, y, z)"},
	{Code: 0x0004, Mnemonic: "ORIENTATION_EULER", ValueTypeSig: "ARRAY<FLOAT32,3>", Unit: "rad", Description: "Euler angles (roll, pitch, yaw)"},
	{Code: 0x0005, Mnemonic: "VELOCITY_3D", ValueTypeSig: "ARRAY<FLOAT32,3>", Unit: "m/s", Description: "Linear velocity vector"},
	{Code: 0x0006, Mnemonic: "VELOCITY_SCALAR", ValueTypeSig: "FLOAT32", Unit: "m/s", Description: "Scalar speed"},
	{Code: 0x0007, Mnemonic: "ANGULAR_VEL", ValueTypeSig: "ARRAY<FLOAT32,3>", Unit: "rad/s", Description: "Angular velocity"},
	{Code: 0x0008, Mnemonic: "ACCELERATION_3D", ValueTypeSig: "ARRAY<FLOAT32,3>", Unit: "m/s^2", Description: "Linear acceleration"},
	{Code: 0x0009, Mnemonic: "POSE_6DOF", ValueTypeSig: "STRUCT{pos,orient}", Description: "Full 6DOF pose"},
	{Code: 0x000A, Mnemonic: "LATITUDE", ValueTypeSig: "FLOAT64", Unit: "deg", Description: "WGS84 latitude"},
	{Code: 0x000B, Mnemonic: "LONGITUDE", ValueTypeSig: "FLOAT64", Unit: "deg", Description: "WGS84 longitude"},
	{Code: 0x000C, Mnemonic: "ALTITUDE_MSL", ValueTypeSig: "FLOAT32", Unit: "m", Description: "Altitude above mean sea level"},
	{Code: 0x000D, Mnemonic: "ALTITUDE_AGL", ValueTypeSig: "FLOAT32", Unit: "m", Description: "Altitude above ground level"},
	{Code: 0x000E, Mnemonic: "GPS_FIX", ValueTypeSig: "STRUCT", Description: "Complete GPS fix record"},
	{Code: 0x000F, Mnemonic: "COORDINATE_FRAME", ValueTypeSig: "UINT8", Description: "Coord frame ID"},
	{Code: 0x0030, Mnemonic: "WAYPOINT", ValueTypeSig: "STRUCT{id,pos,rad}", Description: "Named waypoint"},
	{Code: 0x0031, Mnemonic: "WAYPOINT_ID", ValueTypeSig: "UINT16", Description: "Waypoint identifier"},
	{Code: 0x0032, Mnemonic: "PATH", ValueTypeSig: "LIST<WAYPOINT>", Description: "Ordered waypoint sequence"},
	{Code: 0x0033, Mnemonic: "PATH_SEGMENT", ValueTypeSig: "STRUCT", Description: "Segment with curvature"},
	{Code: 0x0034, Mnemonic: "CURRENT_WAYPOINT", ValueTypeSig: "UINT16", Description: "Current target waypoint index"},
	{Code: 0x0035, Mnemonic: "DISTANCE_TO_WP", ValueTypeSig: "FLOAT32", Unit: "m", Description: "Distance to current waypoint"},
	{Code: 0x0036, Mnemonic: "ETA", ValueTypeSig: "FLOAT32", Unit: "s", Description: "Estimated time of arrival"},
	{Code: 0x0037, Mnemonic: "PATH_COMPLETE", ValueTypeSig: "BOOL", Description: "Path completion flag"},
	{Code: 0x0038, Mnemonic: "PATH_DEVIATION", ValueTypeSig: "FLOAT32", Unit: "m", Description: "Cross-track error"},
	{Code: 0x0039, Mnemonic: "GEOFENCE", ValueTypeSig: "LIST<POSITION_2D>", Description: "Restricted area polygon"},
	{Code: 0x003A, Mnemonic: "GEOFENCE_STATUS", ValueTypeSig: "UINT8", Description: "Geofence relation status"},
	{Code: 0x003B, Mnemonic: "HOME_POSITION", ValueTypeSig: "POSITION_3D", Unit: "m", Description: "Designated home position"},
	{Code: 0x0060, Mnemonic: "OBSTACLE", ValueTypeSig: "STRUCT", Description: "Detected obstacle"},
	{Code: 0x0061, Mnemonic: "OBSTACLE_TYPE", ValueTypeSig: "UINT8", Description: "Obstacle classification"},
	{Code: 0x0062, Mnemonic: "OBSTACLE_SIZE", ValueTypeSig: "ARRAY<FLOAT32,3>", Unit: "m", Description: "Bounding box dimensions"},
	{Code: 0x0063, Mnemonic: "OBSTACLE_LIST", ValueTypeSig: "LIST<OBSTACLE>", Description: "Collection of obstacles"},
	{Code: 0x0064, Mnemonic: "CLEARANCE", ValueTypeSig: "FLOAT32", Unit: "m", Description: "Min clearance to nearest obstacle"},
	{Code: 0x0065, Mnemonic: "COLLISION_RISK", ValueTypeSig: "FLOAT16", Description: "Collision probability 0.0-1.0"},
	{Code: 0x0066, Mnemonic: "TERRAIN_TYPE", ValueTypeSig: "UINT8", Description: "Surface type code"},
	{Code: 0x0067, Mnemonic: "SLOPE_ANGLE", ValueTypeSig: "FLOAT16", Unit: "rad", Description: "Ground slope"},
	{Code: 0x0068, Mnemonic: "VISIBILITY", ValueTypeSig: "FLOAT32", Unit: "m", Description: "Visibility range"},
	{Code: 0x0069, Mnemonic: "OCCUPANCY_GRID", ValueTypeSig: "STRUCT", Description: "2D occupancy grid map"},
	{Code: 0x0090, Mnemonic: "GOTO", ValueTypeSig: "POSITION_3D", Unit: "m", Description: "Navigate to position"},
	{Code: 0x0091, Mnemonic: "GOTO_WAYPOINT", ValueTypeSig: "UINT16", Description: "Navigate to waypoint ID"},
	{Code: 0x0092, Mnemonic: "FOLLOW_PATH", ValueTypeSig: "PATH", Description: "Execute path"},
	{Code: 0x0093, Mnemonic: "STOP", ValueTypeSig: "NONE", Description: "Halt all movement"},
	{Code: 0x0094, Mnemonic: "HOLD_POSITION", ValueTypeSig: "NONE", Description: "Station-keeping"},
	{Code: 0x0095, Mnemonic: "SET_VELOCITY", ValueTypeSig: "VELOCITY_3D", Unit: "m/s", Description: "Set desired velocity"},
	{Code: 0x0096, Mnemonic: "SET_HEADING", ValueTypeSig: "FLOAT32", Unit: "rad", Description: "Turn to heading"},
	{Code: 0x0097, Mnemonic: "ORBIT", ValueTypeSig: "STRUCT", Description: "Orbit a point"},
	{Code: 0x0098, Mnemonic: "FOLLOW_AGENT", ValueTypeSig: "STRUCT{uuid,dist}", Description: "Follow another agent"},
	{Code: 0x0099, Mnemonic: "RETURN_HOME", ValueTypeSig: "NONE", Description: "Navigate to home"},
	{Code: 0x009A, Mnemonic: "AVOID", ValueTypeSig: "STRUCT{pos,radius}", Description: "Add exclusion zone"},
	{Code: 0x009B, Mnemonic: "FORMATION", ValueTypeSig: "STRUCT{type,slot}", Description: "Join formation"},
	{Code: 0x00C0, Mnemonic: "MAP_ORIGIN", ValueTypeSig: "POSITION_3D", Unit: "m", Description: "Origin of the local map frame"},
	{Code: 0x00C1, Mnemonic: "MAP_RESOLUTION", ValueTypeSig: "FLOAT32", Unit: "m", Description: "Grid cell size"},
	{Code: 0x00C2, Mnemonic: "MAP_DIMENSIONS", ValueTypeSig: "ARRAY<UINT16,3>", Description: "Grid dimensions (nx, ny, nz)"},
	{Code: 0x00C3, Mnemonic: "MAP_UPDATE", ValueTypeSig: "STRUCT{region,cells}", Description: "Incremental map patch"},
	{Code: 0x00C4, Mnemonic: "MAP_VERSION", ValueTypeSig: "UINT32", Description: "Map revision counter"},
	{Code: 0x00C5, Mnemonic: "LOCALIZATION_CONF", ValueTypeSig: "FLOAT16", Description: "Localization confidence 0.0-1.0"},
	{Code: 0x00C6, Mnemonic: "POSE_COVARIANCE", ValueTypeSig: "ARRAY<FLOAT32,36>", Description: "6x6 pose uncertainty covariance matrix"},
	{Code: 0x00C7, Mnemonic: "LANDMARK", ValueTypeSig: "STRUCT{id,pos,desc}", Description: "Recognized environmental landmark"},
	{Code: 0x00C8, Mnemonic: "LANDMARK_LIST", ValueTypeSig: "LIST<LANDMARK>", Description: "Collection of observed landmarks"},
	{Code: 0x00C9, Mnemonic: "LOOP_CLOSURE", ValueTypeSig: "STRUCT{from,to,tf}", Description: "Loop closure detection with transform"},
	{Code: 0x00CA, Mnemonic: "RELOCALIZE", ValueTypeSig: "NONE", Description: "Trigger relocalization procedure"},
	{Code: 0x00CB, Mnemonic: "LOCALIZATION_MODE", ValueTypeSig: "UINT8", Description: "0=SLAM, 1=known_map, 2=GPS_primary, 3=visual_odom, 4=dead_reckoning"},
	{Code: 0x00CC, Mnemonic: "ODOMETRY_DRIFT", ValueTypeSig: "FLOAT32", Unit: "m", Description: "Estimated cumulative drift from odometry"},
	{Code: 0x00CD, Mnemonic: "VISUAL_FEATURES", ValueTypeSig: "UINT16", Description: "Number of tracked visual features"},
	{Code: 0x00CE, Mnemonic: "MAP_MERGE_REQ", ValueTypeSig: "STRUCT{agent,hash}", Description: "Request to merge map from another agent"},
	{Code: 0x00CF, Mnemonic: "MAP_MERGE_ACK", ValueTypeSig: "STRUCT{agent,tf}", Description: "Acknowledge merge with alignment transform"},
	{Code: 0x00F0, Mnemonic: "TRANSFORM_3D", ValueTypeSig: "STRUCT{rot,trans}", Description: "Rigid body transform (rotation matrix + translation)"},
	{Code: 0x00F1, Mnemonic: "TRANSFORM_QUAT", ValueTypeSig: "STRUCT{quat,trans}", Description: "Quaternion-based rigid body transform"},
	{Code: 0x00F2, Mnemonic: "FRAME_PARENT", ValueTypeSig: "UINT8", Description: "Parent frame ID in transform tree"},
	{Code: 0x00F3, Mnemonic: "FRAME_CHILD", ValueTypeSig: "UINT8", Description: "Child frame ID in transform tree"},
	{Code: 0x00F4, Mnemonic: "TF_TREE", ValueTypeSig: "LIST<STRUCT{parent,child,tf}>", Description: "Complete transform tree snapshot"},
	{Code: 0x00F5, Mnemonic: "TF_LOOKUP", ValueTypeSig: "STRUCT{from,to}", Description: "Request transform between two frames"},
	{Code: 0x00F6, Mnemonic: "TF_RESULT", ValueTypeSig: "TRANSFORM_QUAT", Description: "Result of a transform lookup"},
	{Code: 0x00F7, Mnemonic: "DATUM_WGS84", ValueTypeSig: "STRUCT{lat,lon,alt}", Description: "WGS84 datum point for local frame"},
	{Code: 0x00F8, Mnemonic: "UTM_ZONE", ValueTypeSig: "STRUCT{zone,band}", Description: "UTM zone number and latitude band"},
	{Code: 0x00F9, Mnemonic: "MAGNETIC_DECLINATION", ValueTypeSig: "FLOAT16", Unit: "rad", Description: "Local magnetic declination"},
	{Code: 0x0110, Mnemonic: "SWARM_CENTER", ValueTypeSig: "POSITION_3D", Unit: "m", Description: "Centroid of all agents in swarm"},
	{Code: 0x0111, Mnemonic: "SWARM_RADIUS", ValueTypeSig: "FLOAT32", Unit: "m", Description: "Bounding radius of swarm"},
	{Code: 0x0112, Mnemonic: "AGENT_POSITIONS", ValueTypeSig: "LIST<STRUCT{uuid,pos}>", Description: "Positions of all known agents"},
	{Code: 0x0113, Mnemonic: "SEPARATION_DIST", ValueTypeSig: "FLOAT32", Unit: "m", Description: "Minimum inter-agent separation distance"},
	{Code: 0x0114, Mnemonic: "COLLISION_ALERT", ValueTypeSig: "STRUCT{agent,ttc}", Description: "Inter-agent collision alert with time-to-collision"},
	{Code: 0x0115, Mnemonic: "ZONE_CLAIM", ValueTypeSig: "STRUCT{agent,polygon}", Description: "Agent claims exclusive operating zone"},
	{Code: 0x0116, Mnemonic: "ZONE_RELEASE", ValueTypeSig: "STRUCT{agent,zone_id}", Description: "Agent releases zone claim"},
	{Code: 0x0117, Mnemonic: "RENDEZVOUS_POINT", ValueTypeSig: "STRUCT{pos,time}", Description: "Designated meeting point with time"},
	{Code: 0x0118, Mnemonic: "CONVOY_JOIN", ValueTypeSig: "STRUCT{leader,pos,slot}", Description: "Join a convoy behind specified leader"},
	{Code: 0x0119, Mnemonic: "CONVOY_LEAVE", ValueTypeSig: "NONE", Description: "Depart from current convoy"},
	{Code: 0x011A, Mnemonic: "COVERAGE_MAP", ValueTypeSig: "STRUCT{grid,visited}", Description: "Coverage completion map for area search"},
	{Code: 0x011B, Mnemonic: "ASSIGN_SECTOR", ValueTypeSig: "STRUCT{agent,polygon}", Description: "Assign search sector to agent"},
	{Code: 0x011C, Mnemonic: "SECTOR_COMPLETE", ValueTypeSig: "STRUCT{agent,sector_id}", Description: "Report sector search complete"},
	{Code: 0x011D, Mnemonic: "RELATIVE_BEARING", ValueTypeSig: "STRUCT{agent,bearing,range}", Description: "Bearing and range to another agent"},
	{Code: 0x011E, Mnemonic: "FORMATION_OFFSET", ValueTypeSig: "STRUCT{slot,offset}", Description: "Position offset within formation for assigned slot"},
	{Code: 0x011F, Mnemonic: "TRAFFIC_DECONFLICT", ValueTypeSig: "STRUCT{agent,corridor}", Description: "Corridor assignment for traffic deconfliction"},
	{Code: 0x0140, Mnemonic: "SPLINE_PATH", ValueTypeSig: "STRUCT{ctrl_pts,order}", Description: "Spline-based smooth path (control points + order)"},
	{Code: 0x0141, Mnemonic: "DUBINS_PATH", ValueTypeSig: "STRUCT{start,end,radius}", Description: "Dubins path for non-holonomic vehicles"},
	{Code: 0x0142, Mnemonic: "VELOCITY_PROFILE", ValueTypeSig: "LIST<STRUCT{dist,vel}>", Description: "Speed profile along path"},
	{Code: 0x0143, Mnemonic: "ALTITUDE_PROFILE", ValueTypeSig: "LIST<STRUCT{dist,alt}>", Description: "Altitude profile along path"},
	{Code: 0x0144, Mnemonic: "NO_FLY_ZONE", ValueTypeSig: "STRUCT{polygon,floor,ceiling}", Description: "3D restricted airspace volume"},
	{Code: 0x0145, Mnemonic: "DYNAMIC_OBSTACLE", ValueTypeSig: "STRUCT{id,pos,vel,pred_path}", Description: "Obstacle with predicted trajectory"},
	{Code: 0x0146, Mnemonic: "REPLAN_TRIGGER", ValueTypeSig: "UINT8", Description: "0=obstacle, 1=path_blocked, 2=priority_change, 3=battery_low, 4=weather"},
	{Code: 0x0147, Mnemonic: "SEARCH_PATTERN", ValueTypeSig: "UINT8", Description: "0=lawnmower, 1=spiral, 2=sector, 3=random_walk, 4=levy_flight"},
	{Code: 0x0148, Mnemonic: "LOITER", ValueTypeSig: "STRUCT{center,radius,alt,duration}", Description: "Loiter (circle) at location for duration"},
	{Code: 0x0149, Mnemonic: "LANDING_ZONE", ValueTypeSig: "STRUCT{pos,heading,slope,clear}", Description: "Designated landing area with surface info"},
	{Code: 0x014A, Mnemonic: "TAKEOFF", ValueTypeSig: "STRUCT{alt}", Description: "Takeoff to specified altitude"},
	{Code: 0x014B, Mnemonic: "LAND", ValueTypeSig: "STRUCT{zone_id}", Description: "Land at designated landing zone"},
}

// PERCEPT-1: visual and sensor perception (104 entries)
var perceptEntries = []DomainEntry{
	{Code: 0x0000, Mnemonic: "DETECTED_OBJECT", ValueTypeSig: "STRUCT", Description: "Detected object with properties"},
	{Code: 0x0001, Mnemonic: "OBJECT_CLASS", ValueTypeSig: "UINT16", Description: "Object class from taxonomy"},
	{Code: 0x0002, Mnemonic: "OBJECT_CONFIDENCE", ValueTypeSig: "FLOAT16", Description: "Detection confidence 0.0-1.0"},
	{Code: 0x0003, Mnemonic: "BOUNDING_BOX_2D", ValueTypeSig: "ARRAY<FLOAT32,4>", Unit: "px", Description: "2D bbox (x, y, width, height)"},
	{Code: 0x0004, Mnemonic: "BOUNDING_BOX_3D", ValueTypeSig: "STRUCT", Unit: "m", Description: "3D bbox (center, dimensions, orientation)"},
	{Code: 0x0005, Mnemonic: "OBJECT_POSITION", ValueTypeSig: "ARRAY<FLOAT32,3>", Unit: "m", Description: "Object centroid in 3D"},
	{Code: 0x0006, Mnemonic: "OBJECT_VELOCITY", ValueTypeSig: "ARRAY<FLOAT32,3>", Unit: "m/s", Description: "Object velocity estimate"},
	{Code: 0x0007, Mnemonic: "OBJECT_ID", ValueTypeSig: "UINT32", Description: "Tracking ID (persistent across frames)"},
	{Code: 0x0008, Mnemonic: "OBJECT_LIST", ValueTypeSig: "LIST<DETECTED_OBJECT>", Description: "Collection of detections"},
	{Code: 0x0009, Mnemonic: "SEGMENTATION_MASK", ValueTypeSig: "BYTES", Description: "Run-length encoded pixel mask"},
	{Code: 0x000A, Mnemonic: "KEYPOINT", ValueTypeSig: "ARRAY<FLOAT32,3>", Unit: "px", Description: "2D keypoint (x, y, confidence)"},
	{Code: 0x000B, Mnemonic: "KEYPOINT_SET", ValueTypeSig: "LIST<KEYPOINT>", Description: "Named set of keypoints (skeleton)"},
	{Code: 0x000C, Mnemonic: "OBJECT_LABEL", ValueTypeSig: "STRING", Description: "Human-readable label"},
	{Code: 0x0030, Mnemonic: "ABOVE", ValueTypeSig: "NONE", Description: "Spatial: A is above B"},
	{Code: 0x0031, Mnemonic: "BELOW", ValueTypeSig: "NONE", Description: "Spatial: A is below B"},
	{Code: 0x0032, Mnemonic: "LEFT_OF", ValueTypeSig: "NONE", Description: "Spatial: A is left of B"},
	{Code: 0x0033, Mnemonic: "RIGHT_OF", ValueTypeSig: "NONE", Description: "Spatial: A is right of B"},
	{Code: 0x0034, Mnemonic: "IN_FRONT_OF", ValueTypeSig: "NONE", Description: "Spatial: A is in front of B"},
	{Code: 0x0035, Mnemonic: "BEHIND", ValueTypeSig: "NONE", Description: "Spatial: A is behind B"},
	{Code: 0x0036, Mnemonic: "INSIDE", ValueTypeSig: "NONE", Description: "Spatial: A is inside B"},
	{Code: 0x0037, Mnemonic: "OUTSIDE", ValueTypeSig: "NONE", Description: "Spatial: A is outside B"},
	{Code: 0x0038, Mnemonic: "ADJACENT", ValueTypeSig: "NONE", Description: "Spatial: A is adjacent to B"},
	{Code: 0x0039, Mnemonic: "FAR_FROM", ValueTypeSig: "NONE", Description: "Spatial: A is far from B"},
	{Code: 0x003A, Mnemonic: "NEAR", ValueTypeSig: "NONE", Description: "Spatial: A is near B"},
	{Code: 0x003B, Mnemonic: "ON_TOP_OF", ValueTypeSig: "NONE", Description: "Spatial: A is resting on B"},
	{Code: 0x003C, Mnemonic: "ATTACHED_TO", ValueTypeSig: "NONE", Description: "Spatial: A is physically attached to B"},
	{Code: 0x0050, Mnemonic: "COLOR_RGB", ValueTypeSig: "ARRAY<UINT8,3>", Description: "Color as (R, G, B)"},
	{Code: 0x0051, Mnemonic: "COLOR_NAME", ValueTypeSig: "UINT8", Description: "Named color index"},
	{Code: 0x0052, Mnemonic: "TEXTURE", ValueTypeSig: "UINT8", Description: "Texture class (smooth, rough, etc.)"},
	{Code: 0x0053, Mnemonic: "MATERIAL", ValueTypeSig: "UINT8", Description: "Material class (metal, wood, etc.)"},
	{Code: 0x0054, Mnemonic: "SHAPE", ValueTypeSig: "UINT8", Description: "Shape class (sphere, cube, etc.)"},
	{Code: 0x0055, Mnemonic: "SIZE_RELATIVE", ValueTypeSig: "UINT8", Description: "Relative size (tiny, small, medium, large, huge)"},
	{Code: 0x0056, Mnemonic: "BRIGHTNESS", ValueTypeSig: "FLOAT16", Unit: "lux", Description: "Measured brightness"},
	{Code: 0x0057, Mnemonic: "TRANSPARENCY", ValueTypeSig: "FLOAT16", Description: "Transparency 0.0-1.0"},
	{Code: 0x0070, Mnemonic: "LIDAR_SCAN", ValueTypeSig: "LIST<ARRAY<FLOAT32,3>>", Unit: "m", Description: "Point cloud from LiDAR"},
	{Code: 0x0071, Mnemonic: "DEPTH_MAP", ValueTypeSig: "STRUCT{w,h,data}", Unit: "m", Description: "Depth image"},
	{Code: 0x0072, Mnemonic: "CAMERA_INTRINSICS", ValueTypeSig: "STRUCT", Description: "Camera calibration matrix"},
	{Code: 0x0073, Mnemonic: "CAMERA_EXTRINSICS", ValueTypeSig: "STRUCT", Description: "Camera pose"},
	{Code: 0x0074, Mnemonic: "IMAGE_EMBEDDING", ValueTypeSig: "ARRAY<FLOAT16,N>", Description: "Feature embedding vector"},
	{Code: 0x0075, Mnemonic: "AUDIO_LEVEL", ValueTypeSig: "FLOAT16", Unit: "dB", Description: "Ambient audio level"},
	{Code: 0x0076, Mnemonic: "TEMPERATURE", ValueTypeSig: "FLOAT16", Unit: "K", Description: "Measured temperature"},
	{Code: 0x0077, Mnemonic: "HUMIDITY", ValueTypeSig: "FLOAT16", Unit: "%", Description: "Relative humidity"},
	{Code: 0x0078, Mnemonic: "PRESSURE", ValueTypeSig: "FLOAT32", Unit: "Pa", Description: "Atmospheric pressure"},
	{Code: 0x0079, Mnemonic: "IMU_DATA", ValueTypeSig: "STRUCT{accel,gyro,mag}", Description: "Inertial measurement unit"},
	{Code: 0x0090, Mnemonic: "SCENE_GRAPH", ValueTypeSig: "LIST<STRUCT{subj,rel,obj}>", Description: "Scene graph: subject-relation-object triples"},
	{Code: 0x0091, Mnemonic: "ROOM_TYPE", ValueTypeSig: "UINT8", Description: "0=unknown, 1=corridor, 2=room, 3=outdoor, 4=stairwell, 5=elevator, 6=garage, 7=warehouse"},
	{Code: 0x0092, Mnemonic: "FLOOR_LEVEL", ValueTypeSig: "INT8", Description: "Building floor number (-N for basement)"},
	{Code: 0x0093, Mnemonic: "SURFACE_NORMAL", ValueTypeSig: "ARRAY<FLOAT32,3>", Description: "Dominant surface normal vector"},
	{Code: 0x0094, Mnemonic: "PLANE_SEGMENT", ValueTypeSig: "STRUCT{normal,d,bounds}", Description: "Detected planar surface segment"},
	{Code: 0x0095, Mnemonic: "PLANE_LIST", ValueTypeSig: "LIST<PLANE_SEGMENT>", Description: "All detected planar surfaces"},
	{Code: 0x0096, Mnemonic: "SEMANTIC_LABEL", ValueTypeSig: "STRUCT{region,class,conf}", Description: "Semantic segmentation label for a region"},
	{Code: 0x0097, Mnemonic: "SCENE_COMPLEXITY", ValueTypeSig: "FLOAT16", Description: "Scene complexity score 0.0-1.0"},
	{Code: 0x0098, Mnemonic: "CLUTTER_DENSITY", ValueTypeSig: "FLOAT16", Description: "Object density per cubic meter"},
	{Code: 0x0099, Mnemonic: "TRAVERSABILITY", ValueTypeSig: "FLOAT16", Description: "Surface traversability score 0.0-1.0"},
	{Code: 0x009A, Mnemonic: "DOOR_STATE", ValueTypeSig: "STRUCT{pos,state}", Description: "Door: 0=closed, 1=open, 2=ajar, 3=locked"},
	{Code: 0x009B, Mnemonic: "OPENING", ValueTypeSig: "STRUCT{pos,width,height}", Unit: "m", Description: "Passable opening (doorway, gap)"},
	{Code: 0x009C, Mnemonic: "STAIRS", ValueTypeSig: "STRUCT{pos,direction,count}", Description: "Detected staircase with step count"},
	{Code: 0x009D, Mnemonic: "RAMP", ValueTypeSig: "STRUCT{pos,slope,width}", Description: "Detected ramp or incline"},
	{Code: 0x009E, Mnemonic: "SIGN_TEXT", ValueTypeSig: "STRUCT{pos,text,lang}", Description: "Detected and OCR'd sign text"},
	{Code: 0x009F, Mnemonic: "QR_CODE", ValueTypeSig: "STRUCT{pos,data}", Description: "Detected QR code with decoded data"},
	{Code: 0x00B0, Mnemonic: "MOTION_DETECTED", ValueTypeSig: "STRUCT{region,magnitude}", Description: "Motion detected in field of view"},
	{Code: 0x00B1, Mnemonic: "OBJECT_APPEARED", ValueTypeSig: "STRUCT{id,class,pos}", Description: "New object entered field of view"},
	{Code: 0x00B2, Mnemonic: "OBJECT_DISAPPEARED", ValueTypeSig: "STRUCT{id,last_pos}", Description: "Tracked object left field of view"},
	{Code: 0x00B3, Mnemonic: "OBJECT_STOPPED", ValueTypeSig: "STRUCT{id,pos,duration}", Description: "Moving object has stopped"},
	{Code: 0x00B4, Mnemonic: "OBJECT_PICKED_UP", ValueTypeSig: "STRUCT{id,agent}", Description: "Object was picked up"},
	{Code: 0x00B5, Mnemonic: "OBJECT_PLACED", ValueTypeSig: "STRUCT{id,surface}", Description: "Object was placed on surface"},
	{Code: 0x00B6, Mnemonic: "GESTURE_DETECTED", ValueTypeSig: "STRUCT{type,agent,conf}", Description: "Human gesture recognized"},
	{Code: 0x00B7, Mnemonic: "GESTURE_TYPE", ValueTypeSig: "UINT8", Description: "0=wave, 1=point, 2=stop, 3=come, 4=thumbs_up, 5=thumbs_down, 6=nod, 7=shake_head"},
	{Code: 0x00B8, Mnemonic: "FACE_DETECTED", ValueTypeSig: "STRUCT{bbox,landmarks,id}", Description: "Detected human face with optional ID"},
	{Code: 0x00B9, Mnemonic: "FACE_EXPRESSION", ValueTypeSig: "UINT8", Description: "0=neutral, 1=happy, 2=sad, 3=angry, 4=surprised, 5=fearful, 6=disgusted"},
	{Code: 0x00BA, Mnemonic: "PERSON_POSE", ValueTypeSig: "LIST<KEYPOINT>", Description: "Full body skeleton keypoints"},
	{Code: 0x00BB, Mnemonic: "ACTIVITY_CLASS", ValueTypeSig: "UINT8", Description: "0=standing, 1=walking, 2=running, 3=sitting, 4=lying, 5=falling, 6=working, 7=waving"},
	{Code: 0x00BC, Mnemonic: "CROWD_DENSITY", ValueTypeSig: "FLOAT16", Unit: "1/m^2", Description: "People per square meter in region"},
	{Code: 0x00BD, Mnemonic: "ANOMALY_DETECTED", ValueTypeSig: "STRUCT{type,pos,conf}", Description: "Anomalous event or state detected"},
	{Code: 0x00BE, Mnemonic: "LIGHT_CHANGE", ValueTypeSig: "STRUCT{before,after}", Unit: "lux", Description: "Significant illumination change"},
	{Code: 0x00BF, Mnemonic: "OCCLUSION", ValueTypeSig: "STRUCT{obj_id,pct}", Description: "Object partially occluded (percent hidden)"},
	{Code: 0x00D0, Mnemonic: "SOUND_EVENT", ValueTypeSig: "STRUCT{class,dir,level}", Description: "Detected sound event"},
	{Code: 0x00D1, Mnemonic: "SOUND_CLASS", ValueTypeSig: "UINT8", Description: "0=speech, 1=alarm, 2=impact, 3=engine, 4=music, 5=animal, 6=footsteps, 7=glass_break"},
	{Code: 0x00D2, Mnemonic: "SOUND_DIRECTION", ValueTypeSig: "ARRAY<FLOAT32,2>", Unit: "rad", Description: "Azimuth and elevation of sound source"},
	{Code: 0x00D3, Mnemonic: "SOUND_LEVEL", ValueTypeSig: "FLOAT16", Unit: "dB_SPL", Description: "Sound pressure level"},
	{Code: 0x00D4, Mnemonic: "SPEECH_DETECTED", ValueTypeSig: "STRUCT{dir,lang,dur}", Description: "Speech activity detected"},
	{Code: 0x00D5, Mnemonic: "SPEECH_TEXT", ValueTypeSig: "STRUCT{text,lang,conf}", Description: "Speech-to-text transcription result"},
	{Code: 0x00D6, Mnemonic: "SPEAKER_ID", ValueTypeSig: "STRUCT{uuid,conf}", Description: "Identified speaker (voice print match)"},
	{Code: 0x00D7, Mnemonic: "AMBIENT_NOISE", ValueTypeSig: "FLOAT16", Unit: "dB_SPL", Description: "Background noise floor level"},
	{Code: 0x00D8, Mnemonic: "ALARM_ACTIVE", ValueTypeSig: "STRUCT{type,pos,level}", Description: "Active alarm detected (fire, security, etc.)"},
	{Code: 0x00E0, Mnemonic: "CONTACT_DETECTED", ValueTypeSig: "STRUCT{pos,normal,force}", Description: "Physical contact detected"},
	{Code: 0x00E1, Mnemonic: "CONTACT_FORCE", ValueTypeSig: "ARRAY<FLOAT32,3>", Unit: "N", Description: "Contact force vector"},
	{Code: 0x00E2, Mnemonic: "CONTACT_AREA", ValueTypeSig: "FLOAT32", Unit: "m^2", Description: "Estimated contact patch area"},
	{Code: 0x00E3, Mnemonic: "SURFACE_FRICTION", ValueTypeSig: "FLOAT16", Description: "Estimated surface friction coefficient"},
	{Code: 0x00E4, Mnemonic: "VIBRATION", ValueTypeSig: "STRUCT{freq,amplitude}", Description: "Detected vibration (frequency and amplitude)"},
	{Code: 0x00E5, Mnemonic: "LOAD_CELL", ValueTypeSig: "STRUCT{id,force}", Unit: "N", Description: "Load cell reading"},
	{Code: 0x00E6, Mnemonic: "TORQUE_SENSOR", ValueTypeSig: "STRUCT{id,torque}", Unit: "Nm", Description: "Torque sensor reading"},
	{Code: 0x00E7, Mnemonic: "SLIP_DETECTED", ValueTypeSig: "STRUCT{gripper,obj}", Description: "Object slippage detected at gripper"},
	{Code: 0x00E8, Mnemonic: "PROXIMITY_SENSOR", ValueTypeSig: "STRUCT{id,range}", Unit: "m", Description: "Proximity sensor reading"},
	{Code: 0x00F0, Mnemonic: "GAS_CONCENTRATION", ValueTypeSig: "STRUCT{gas,ppm}", Unit: "ppm", Description: "Gas concentration (CO, CO2, CH4, etc.)"},
	{Code: 0x00F1, Mnemonic: "RADIATION_LEVEL", ValueTypeSig: "FLOAT32", Unit: "uSv/h", Description: "Radiation dose rate"},
	{Code: 0x00F2, Mnemonic: "WIND_SPEED", ValueTypeSig: "FLOAT32", Unit: "m/s", Description: "Measured wind speed"},
	{Code: 0x00F3, Mnemonic: "WIND_DIRECTION", ValueTypeSig: "FLOAT32", Unit: "rad", Description: "Wind direction (from)"},
	{Code: 0x00F4, Mnemonic: "RAIN_RATE", ValueTypeSig: "FLOAT16", Unit: "mm/h", Description: "Precipitation rate"},
	{Code: 0x00F5, Mnemonic: "UV_INDEX", ValueTypeSig: "FLOAT16", Description: "Ultraviolet radiation index"},
	{Code: 0x00F6, Mnemonic: "AIR_QUALITY_INDEX", ValueTypeSig: "UINT16", Description: "Air quality index (0-500)"},
	{Code: 0x00F7, Mnemonic: "DUST_DENSITY", ValueTypeSig: "FLOAT32", Unit: "ug/m^3", Description: "Particulate matter concentration"},
	{Code: 0x00F8, Mnemonic: "MAGNETIC_FIELD", ValueTypeSig: "ARRAY<FLOAT32,3>", Unit: "uT", Description: "Local magnetic field vector"},
	{Code: 0x00F9, Mnemonic: "LIGHT_SPECTRUM", ValueTypeSig: "STRUCT{wavelengths,intensities}", Description: "Spectral light measurement"},
}

// MANIP-1: robotic manipulation and grasping (75 entries)
var manipEntries = []DomainEntry{
	{Code: 0x0000, Mnemonic: "GRIPPER_STATE", ValueTypeSig: "UINT8", Description: "0=open, 1=closing, 2=closed, 3=opening, 4=holding, 5=error"},
	{Code: 0x0001, Mnemonic: "GRIPPER_WIDTH", ValueTypeSig: "FLOAT32", Unit: "m", Description: "Current gripper aperture width"},
	{Code: 0x0002, Mnemonic: "GRIPPER_FORCE", ValueTypeSig: "FLOAT32", Unit: "N", Description: "Current gripper force"},
	{Code: 0x0003, Mnemonic: "GRIPPER_SET_WIDTH", ValueTypeSig: "FLOAT32", Unit: "m", Description: "Commanded gripper width"},
	{Code: 0x0004, Mnemonic: "GRIPPER_SET_FORCE", ValueTypeSig: "FLOAT32", Unit: "N", Description: "Commanded gripper force limit"},
	{Code: 0x0005, Mnemonic: "TOOL_TYPE", ValueTypeSig: "UINT8", Description: "0=parallel_jaw, 1=vacuum, 2=magnetic, 3=soft, 4=finger_3, 5=hook, 6=scoop, 7=custom"},
	{Code: 0x0006, Mnemonic: "TOOL_CENTER_POINT", ValueTypeSig: "ARRAY<FLOAT32,3>", Unit: "m", Description: "Tool center point (TCP) in end-effector frame"},
	{Code: 0x0007, Mnemonic: "TOOL_CHANGE_REQ", ValueTypeSig: "UINT8", Description: "Request tool change to specified tool type"},
	{Code: 0x0008, Mnemonic: "TOOL_CHANGE_ACK", ValueTypeSig: "UINT8", Description: "Tool change completed"},
	{Code: 0x0009, Mnemonic: "SUCTION_PRESSURE", ValueTypeSig: "FLOAT32", Unit: "Pa", Description: "Vacuum gripper suction pressure"},
	{Code: 0x000A, Mnemonic: "SUCTION_STATUS", ValueTypeSig: "UINT8", Description: "0=off, 1=engaged, 2=leak, 3=lost_seal"},
	{Code: 0x000B, Mnemonic: "FINGER_POSITIONS", ValueTypeSig: "LIST<FLOAT32>", Unit: "rad", Description: "Per-finger joint positions"},
	{Code: 0x000C, Mnemonic: "FINGER_FORCES", ValueTypeSig: "LIST<FLOAT32>", Unit: "N", Description: "Per-finger contact forces"},
	{Code: 0x000D, Mnemonic: "TACTILE_ARRAY", ValueTypeSig: "STRUCT{rows,cols,data}", Unit: "Pa", Description: "Tactile sensor pad readings"},
	{Code: 0x0020, Mnemonic: "JOINT_POSITIONS", ValueTypeSig: "LIST<FLOAT32>", Unit: "rad", Description: "All joint angles"},
	{Code: 0x0021, Mnemonic: "JOINT_VELOCITIES", ValueTypeSig: "LIST<FLOAT32>", Unit: "rad/s", Description: "All joint angular velocities"},
	{Code: 0x0022, Mnemonic: "JOINT_TORQUES", ValueTypeSig: "LIST<FLOAT32>", Unit: "Nm", Description: "All joint torques"},
	{Code: 0x0023, Mnemonic: "JOINT_LIMITS", ValueTypeSig: "LIST<STRUCT{min,max}>", Unit: "rad", Description: "Joint angle limits"},
	{Code: 0x0024, Mnemonic: "JOINT_TARGET", ValueTypeSig: "LIST<FLOAT32>", Unit: "rad", Description: "Commanded joint positions"},
	{Code: 0x0025, Mnemonic: "JOINT_TRAJECTORY", ValueTypeSig: "LIST<STRUCT{time,positions}>", Description: "Time-parameterized joint trajectory"},
	{Code: 0x0026, Mnemonic: "JOINT_IMPEDANCE", ValueTypeSig: "STRUCT{stiffness,damping}", Description: "Joint impedance parameters"},
	{Code: 0x0027, Mnemonic: "DOF_COUNT", ValueTypeSig: "UINT8", Description: "Number of degrees of freedom"},
	{Code: 0x0028, Mnemonic: "DH_PARAMETERS", ValueTypeSig: "LIST<STRUCT{a,alpha,d,theta}>", Description: "Denavit-Hartenberg kinematic parameters"},
	{Code: 0x0029, Mnemonic: "SINGULARITY_PROXIMITY", ValueTypeSig: "FLOAT16", Description: "Distance to kinematic singularity 0.0-1.0"},
	{Code: 0x0040, Mnemonic: "EE_POSE", ValueTypeSig: "STRUCT{pos,orient}", Description: "End-effector pose in base frame"},
	{Code: 0x0041, Mnemonic: "EE_VELOCITY", ValueTypeSig: "STRUCT{linear,angular}", Description: "End-effector twist (linear + angular velocity)"},
	{Code: 0x0042, Mnemonic: "EE_WRENCH", ValueTypeSig: "STRUCT{force,torque}", Description: "End-effector wrench (force + torque)"},
	{Code: 0x0043, Mnemonic: "CARTESIAN_TARGET", ValueTypeSig: "STRUCT{pos,orient}", Description: "Commanded end-effector pose"},
	{Code: 0x0044, Mnemonic: "CARTESIAN_PATH", ValueTypeSig: "LIST<STRUCT{pos,orient,time}>", Description: "Cartesian trajectory waypoints"},
	{Code: 0x0045, Mnemonic: "WORKSPACE_LIMIT", ValueTypeSig: "STRUCT{min,max}", Unit: "m", Description: "Reachable workspace bounding box"},
	{Code: 0x0046, Mnemonic: "COMPLIANCE_FRAME", ValueTypeSig: "STRUCT{pos,orient}", Description: "Reference frame for compliance control"},
	{Code: 0x0047, Mnemonic: "IMPEDANCE_PARAMS", ValueTypeSig: "STRUCT{mass,damping,stiffness}", Description: "Cartesian impedance parameters"},
	{Code: 0x0048, Mnemonic: "FORCE_THRESHOLD", ValueTypeSig: "STRUCT{force,torque}", Description: "Force/torque thresholds for safety stop"},
	{Code: 0x0060, Mnemonic: "GRASP_POSE", ValueTypeSig: "STRUCT{pos,orient,width}", Description: "Planned grasp pose"},
	{Code: 0x0061, Mnemonic: "GRASP_QUALITY", ValueTypeSig: "FLOAT16", Description: "Grasp quality metric 0.0-1.0"},
	{Code: 0x0062, Mnemonic: "GRASP_TYPE", ValueTypeSig: "UINT8", Description: "0=power, 1=precision, 2=pinch, 3=wrap, 4=hook, 5=lateral, 6=spherical"},
	{Code: 0x0063, Mnemonic: "GRASP_LIST", ValueTypeSig: "LIST<STRUCT{pose,quality,type}>", Description: "Ranked list of candidate grasps"},
	{Code: 0x0064, Mnemonic: "GRASP_EXECUTE", ValueTypeSig: "STRUCT{grasp_id}", Description: "Command: execute specified grasp"},
	{Code: 0x0065, Mnemonic: "GRASP_RESULT", ValueTypeSig: "UINT8", Description: "0=success, 1=slip, 2=miss, 3=collision, 4=force_limit"},
	{Code: 0x0066, Mnemonic: "APPROACH_VECTOR", ValueTypeSig: "ARRAY<FLOAT32,3>", Description: "Approach direction for grasp"},
	{Code: 0x0067, Mnemonic: "RETREAT_VECTOR", ValueTypeSig: "ARRAY<FLOAT32,3>", Description: "Retreat direction after grasp"},
	{Code: 0x0068, Mnemonic: "OBJECT_MASS", ValueTypeSig: "FLOAT32", Unit: "kg", Description: "Estimated mass of grasped object"},
	{Code: 0x0069, Mnemonic: "CENTER_OF_MASS", ValueTypeSig: "ARRAY<FLOAT32,3>", Unit: "m", Description: "Estimated CoM of grasped object"},
	{Code: 0x006A, Mnemonic: "INERTIA_TENSOR", ValueTypeSig: "ARRAY<FLOAT32,9>", Unit: "kg*m^2", Description: "Estimated rotational inertia of object"},
	{Code: 0x0080, Mnemonic: "PICK", ValueTypeSig: "STRUCT{object_id,grasp}", Description: "Pick up object with grasp plan"},
	{Code: 0x0081, Mnemonic: "PLACE", ValueTypeSig: "STRUCT{object_id,target_pose}", Description: "Place object at target pose"},
	{Code: 0x0082, Mnemonic: "PUSH", ValueTypeSig: "STRUCT{object_id,direction,dist}", Description: "Push object in direction"},
	{Code: 0x0083, Mnemonic: "PULL", ValueTypeSig: "STRUCT{object_id,direction,dist}", Description: "Pull object in direction"},
	{Code: 0x0084, Mnemonic: "ROTATE_OBJECT", ValueTypeSig: "STRUCT{object_id,axis,angle}", Description: "Rotate held object about axis"},
	{Code: 0x0085, Mnemonic: "INSERT", ValueTypeSig: "STRUCT{peg_id,hole_pose,tol}", Description: "Peg-in-hole insertion"},
	{Code: 0x0086, Mnemonic: "SCREW", ValueTypeSig: "STRUCT{fastener,direction,torque}", Description: "Screw/unscrew operation"},
	{Code: 0x0087, Mnemonic: "POUR", ValueTypeSig: "STRUCT{source,target,amount}", Description: "Pour from container to target"},
	{Code: 0x0088, Mnemonic: "WIPE", ValueTypeSig: "STRUCT{surface,pattern,force}", Description: "Wiping/cleaning motion"},
	{Code: 0x0089, Mnemonic: "HANDOVER", ValueTypeSig: "STRUCT{object_id,to_agent}", Description: "Hand object to another agent"},
	{Code: 0x008A, Mnemonic: "RECEIVE_OBJECT", ValueTypeSig: "STRUCT{from_agent}", Description: "Ready to receive object from agent"},
	{Code: 0x008B, Mnemonic: "STACK", ValueTypeSig: "STRUCT{object_id,on_top_of}", Description: "Stack object on another"},
	{Code: 0x008C, Mnemonic: "UNSTACK", ValueTypeSig: "STRUCT{object_id}", Description: "Remove top object from stack"},
	{Code: 0x008D, Mnemonic: "ALIGN", ValueTypeSig: "STRUCT{object_id,reference}", Description: "Align object to reference"},
	{Code: 0x008E, Mnemonic: "FOLD", ValueTypeSig: "STRUCT{object_id,fold_line,angle}", Description: "Fold deformable object"},
	{Code: 0x008F, Mnemonic: "CUT", ValueTypeSig: "STRUCT{tool,path,depth}", Description: "Cutting operation along path"},
	{Code: 0x00A0, Mnemonic: "FORCE_MODE", ValueTypeSig: "UINT8", Description: "0=position, 1=force, 2=impedance, 3=admittance, 4=hybrid"},
	{Code: 0x00A1, Mnemonic: "TARGET_FORCE", ValueTypeSig: "ARRAY<FLOAT32,3>", Unit: "N", Description: "Commanded contact force"},
	{Code: 0x00A2, Mnemonic: "TARGET_TORQUE", ValueTypeSig: "ARRAY<FLOAT32,3>", Unit: "Nm", Description: "Commanded contact torque"},
	{Code: 0x00A3, Mnemonic: "CONTACT_STATE", ValueTypeSig: "UINT8", Description: "0=free, 1=approaching, 2=contact, 3=stable, 4=sliding, 5=stuck"},
	{Code: 0x00A4, Mnemonic: "FORCE_ERROR", ValueTypeSig: "ARRAY<FLOAT32,6>", Description: "Force/torque tracking error"},
	{Code: 0x00A5, Mnemonic: "COMPLIANCE_AXES", ValueTypeSig: "ARRAY<BOOL,6>", Description: "Which axes are compliant (force-controlled)"},
	{Code: 0x00A6, Mnemonic: "STIFFNESS_MATRIX", ValueTypeSig: "ARRAY<FLOAT32,36>", Description: "6x6 Cartesian stiffness matrix"},
	{Code: 0x00A7, Mnemonic: "DAMPING_MATRIX", ValueTypeSig: "ARRAY<FLOAT32,36>", Description: "6x6 Cartesian damping matrix"},
	{Code: 0x00B0, Mnemonic: "DEFORM_MODEL", ValueTypeSig: "STRUCT{type,params}", Description: "Deformable object model (FEM, mass-spring, etc.)"},
	{Code: 0x00B1, Mnemonic: "DEFORM_STATE", ValueTypeSig: "LIST<ARRAY<FLOAT32,3>>", Unit: "m", Description: "Current deformation state (node positions)"},
	{Code: 0x00B2, Mnemonic: "STRETCH_LIMIT", ValueTypeSig: "FLOAT32", Description: "Maximum allowable stretch ratio"},
	{Code: 0x00B3, Mnemonic: "STIFFNESS_EST", ValueTypeSig: "FLOAT32", Unit: "N/m", Description: "Estimated object stiffness"},
	{Code: 0x00B4, Mnemonic: "ROPE_CONFIG", ValueTypeSig: "LIST<ARRAY<FLOAT32,3>>", Unit: "m", Description: "Rope/cable configuration (ordered points)"},
	{Code: 0x00B5, Mnemonic: "CLOTH_CORNERS", ValueTypeSig: "LIST<ARRAY<FLOAT32,3>>", Unit: "m", Description: "Cloth corner positions"},
	{Code: 0x00B6, Mnemonic: "KNOT_TYPE", ValueTypeSig: "UINT8", Description: "0=none, 1=overhand, 2=bowline, 3=cleat_hitch, 4=unknown"},
}

// COMM-1: inter-agent communication and social protocols (63 entries)
var commEntries = []DomainEntry{
	{Code: 0x0000, Mnemonic: "AGENT_UUID", ValueTypeSig: "BYTES(16)", Description: "128-bit agent unique identifier"},
	{Code: 0x0001, Mnemonic: "AGENT_NAME", ValueTypeSig: "STRING", Description: "Human-readable agent name"},
	{Code: 0x0002, Mnemonic: "AGENT_TYPE", ValueTypeSig: "UINT8", Description: "0=ground_robot, 1=aerial, 2=underwater, 3=manipulator, 4=humanoid, 5=vehicle, 6=sensor_node, 7=base_station"},
	{Code: 0x0003, Mnemonic: "AGENT_ROLE", ValueTypeSig: "UINT8", Description: "0=worker, 1=leader, 2=scout, 3=relay, 4=supervisor, 5=medic, 6=transport, 7=sentinel"},
	{Code: 0x0004, Mnemonic: "TEAM_ID", ValueTypeSig: "UINT16", Description: "Team/group membership identifier"},
	{Code: 0x0005, Mnemonic: "AUTHORITY_LEVEL", ValueTypeSig: "UINT8", Description: "Command authority 0 (none) to 7 (supreme)"},
	{Code: 0x0006, Mnemonic: "DISCOVERY_BEACON", ValueTypeSig: "STRUCT{uuid,type,caps}", Description: "Periodic presence announcement"},
	{Code: 0x0007, Mnemonic: "PEER_LIST", ValueTypeSig: "LIST<STRUCT{uuid,name,type}>", Description: "Known peers in communication range"},
	{Code: 0x0008, Mnemonic: "HEARTBEAT", ValueTypeSig: "STRUCT{uuid,ts,health}", Description: "Periodic liveness signal"},
	{Code: 0x0009, Mnemonic: "AGENT_DEPARTED", ValueTypeSig: "STRUCT{uuid,reason}", Description: "Agent leaving communication group"},
	{Code: 0x000A, Mnemonic: "AGENT_JOINED", ValueTypeSig: "STRUCT{uuid,caps}", Description: "New agent entered communication range"},
	{Code: 0x000B, Mnemonic: "IDENTITY_VERIFY", ValueTypeSig: "STRUCT{uuid,challenge}", Description: "Identity verification challenge"},
	{Code: 0x000C, Mnemonic: "IDENTITY_RESPONSE", ValueTypeSig: "STRUCT{uuid,signature}", Description: "Identity verification response"},
	{Code: 0x000D, Mnemonic: "TRUST_LEVEL", ValueTypeSig: "STRUCT{uuid,level}", Description: "Trust assessment for agent (0.0-1.0)"},
	{Code: 0x0020, Mnemonic: "UNICAST", ValueTypeSig: "STRUCT{dest_uuid}", Description: "Directed message to single agent"},
	{Code: 0x0021, Mnemonic: "MULTICAST", ValueTypeSig: "STRUCT{dest_list}", Description: "Directed to set of agents"},
	{Code: 0x0022, Mnemonic: "BROADCAST", ValueTypeSig: "NONE", Description: "Sent to all agents in range"},
	{Code: 0x0023, Mnemonic: "RELAY_REQUEST", ValueTypeSig: "STRUCT{dest,via}", Description: "Request message relay through intermediary"},
	{Code: 0x0024, Mnemonic: "RELAY_ACK", ValueTypeSig: "STRUCT{msg_id}", Description: "Relay node confirms forwarding"},
	{Code: 0x0025, Mnemonic: "MESH_ROUTE", ValueTypeSig: "LIST<UINT128>", Description: "Explicit route through mesh network (UUID list)"},
	{Code: 0x0026, Mnemonic: "HOP_COUNT", ValueTypeSig: "UINT8", Description: "Number of relay hops traversed"},
	{Code: 0x0027, Mnemonic: "MSG_ID", ValueTypeSig: "UINT64", Description: "Unique message identifier for dedup"},
	{Code: 0x0028, Mnemonic: "REPLY_TO", ValueTypeSig: "UINT64", Description: "Message ID this is replying to"},
	{Code: 0x0029, Mnemonic: "THREAD_ID", ValueTypeSig: "UINT64", Description: "Conversation thread identifier"},
	{Code: 0x002A, Mnemonic: "PRIORITY_OVERRIDE", ValueTypeSig: "UINT8", Description: "Override message priority (0-7)"},
	{Code: 0x002B, Mnemonic: "EXPIRY_TIME", ValueTypeSig: "TIMESTAMP", Description: "Message expires after this time"},
	{Code: 0x0040, Mnemonic: "CHANNEL_BUSY", ValueTypeSig: "NONE", Description: "Carrier sense: channel occupied"},
	{Code: 0x0041, Mnemonic: "CHANNEL_CLEAR", ValueTypeSig: "NONE", Description: "Carrier sense: channel free"},
	{Code: 0x0042, Mnemonic: "TX_REQUEST", ValueTypeSig: "STRUCT{duration_ms}", Description: "Request to transmit for N ms"},
	{Code: 0x0043, Mnemonic: "TX_GRANT", ValueTypeSig: "STRUCT{slot_start,duration}", Description: "Permission to transmit in time slot"},
	{Code: 0x0044, Mnemonic: "TX_DENY", ValueTypeSig: "STRUCT{reason}", Description: "Transmission request denied"},
	{Code: 0x0045, Mnemonic: "TDMA_SCHEDULE", ValueTypeSig: "LIST<STRUCT{agent,slot,dur}>", Description: "Time-division schedule assignment"},
	{Code: 0x0046, Mnemonic: "INTERFERENCE_REPORT", ValueTypeSig: "STRUCT{freq,level,direction}", Description: "Detected RF/acoustic interference"},
	{Code: 0x0047, Mnemonic: "CHANNEL_SWITCH", ValueTypeSig: "STRUCT{new_band,time}", Description: "Request/announce band change"},
	{Code: 0x0048, Mnemonic: "SILENCE_PERIOD", ValueTypeSig: "STRUCT{start,duration}", Description: "Request radio silence period"},
	{Code: 0x0049, Mnemonic: "ENCRYPTION_MODE", ValueTypeSig: "UINT8", Description: "0=none, 1=AES128, 2=AES256, 3=ChaCha20"},
	{Code: 0x004A, Mnemonic: "KEY_EXCHANGE", ValueTypeSig: "STRUCT{type,pubkey}", Description: "Cryptographic key exchange"},
	{Code: 0x004B, Mnemonic: "SESSION_KEY", ValueTypeSig: "BYTES", Description: "Encrypted session key delivery"},
	{Code: 0x0060, Mnemonic: "STATUS_UPDATE", ValueTypeSig: "STRUCT{agent,status,detail}", Description: "General status broadcast"},
	{Code: 0x0061, Mnemonic: "HELP_REQUEST", ValueTypeSig: "STRUCT{type,urgency,pos}", Description: "Request assistance from peers"},
	{Code: 0x0062, Mnemonic: "HELP_OFFER", ValueTypeSig: "STRUCT{to_agent,eta}", Description: "Offer to assist another agent"},
	{Code: 0x0063, Mnemonic: "HELP_DECLINE", ValueTypeSig: "STRUCT{to_agent,reason}", Description: "Decline assistance offer"},
	{Code: 0x0064, Mnemonic: "SITUATION_REPORT", ValueTypeSig: "STRUCT{summary,threats,assets}", Description: "Comprehensive situation report"},
	{Code: 0x0065, Mnemonic: "INFORMATION_SHARE", ValueTypeSig: "STRUCT{topic,data}", Description: "Proactive information sharing"},
	{Code: 0x0066, Mnemonic: "ATTENTION_ALERT", ValueTypeSig: "STRUCT{target,urgency}", Description: "Request another agent's attention"},
	{Code: 0x0067, Mnemonic: "THANK", ValueTypeSig: "STRUCT{to_agent,reason}", Description: "Social: express gratitude"},
	{Code: 0x0068, Mnemonic: "APOLOGY", ValueTypeSig: "STRUCT{to_agent,context}", Description: "Social: express regret for error"},
	{Code: 0x0069, Mnemonic: "HUMOR_MARKER", ValueTypeSig: "NONE", Description: "Indicates non-literal/playful intent"},
	{Code: 0x006A, Mnemonic: "SARCASM_MARKER", ValueTypeSig: "NONE", Description: "Indicates opposite-meaning intent"},
	{Code: 0x006B, Mnemonic: "PING", ValueTypeSig: "STRUCT{dest_uuid}", Description: "Lightweight liveness check"},
	{Code: 0x006C, Mnemonic: "PONG", ValueTypeSig: "STRUCT{src_uuid,latency}", Description: "Liveness response with measured latency"},
	{Code: 0x0080, Mnemonic: "SYNC_REQUEST", ValueTypeSig: "STRUCT{dataset,version}", Description: "Request data synchronization"},
	{Code: 0x0081, Mnemonic: "SYNC_OFFER", ValueTypeSig: "STRUCT{dataset,version,hash}", Description: "Offer dataset for sync"},
	{Code: 0x0082, Mnemonic: "SYNC_DIFF", ValueTypeSig: "STRUCT{dataset,changes}", Description: "Incremental dataset update"},
	{Code: 0x0083, Mnemonic: "SYNC_ACK", ValueTypeSig: "STRUCT{dataset,version}", Description: "Acknowledge sync complete"},
	{Code: 0x0084, Mnemonic: "BLACKBOARD_PUT", ValueTypeSig: "STRUCT{key,value}", Description: "Write to shared blackboard"},
	{Code: 0x0085, Mnemonic: "BLACKBOARD_GET", ValueTypeSig: "STRUCT{key}", Description: "Read from shared blackboard"},
	{Code: 0x0086, Mnemonic: "BLACKBOARD_VALUE", ValueTypeSig: "STRUCT{key,value,ts}", Description: "Blackboard read response"},
	{Code: 0x0087, Mnemonic: "BLACKBOARD_SUBSCRIBE", ValueTypeSig: "STRUCT{key_pattern}", Description: "Subscribe to blackboard changes"},
	{Code: 0x0088, Mnemonic: "BLACKBOARD_NOTIFY", ValueTypeSig: "STRUCT{key,value,ts}", Description: "Notification of blackboard change"},
	{Code: 0x0089, Mnemonic: "EVENT_PUBLISH", ValueTypeSig: "STRUCT{topic,payload}", Description: "Publish event to topic"},
	{Code: 0x008A, Mnemonic: "EVENT_SUBSCRIBE", ValueTypeSig: "STRUCT{topic}", Description: "Subscribe to event topic"},
	{Code: 0x008B, Mnemonic: "EVENT_UNSUBSCRIBE", ValueTypeSig: "STRUCT{topic}", Description: "Unsubscribe from event topic"},
}

// DIAG-1: diagnostic and system health reporting (86 entries)
var diagEntries = []DomainEntry{
	{Code: 0x0000, Mnemonic: "BATTERY_LEVEL", ValueTypeSig: "FLOAT16", Unit: "%", Description: "Battery state of charge 0-100%"},
	{Code: 0x0001, Mnemonic: "BATTERY_VOLTAGE", ValueTypeSig: "FLOAT16", Unit: "V", Description: "Battery terminal voltage"},
	{Code: 0x0002, Mnemonic: "BATTERY_CURRENT", ValueTypeSig: "FLOAT16", Unit: "A", Description: "Battery discharge current"},
	{Code: 0x0003, Mnemonic: "BATTERY_TEMP", ValueTypeSig: "FLOAT16", Unit: "K", Description: "Battery temperature"},
	{Code: 0x0004, Mnemonic: "CHARGE_RATE", ValueTypeSig: "FLOAT16", Unit: "W", Description: "Current charge rate"},
	{Code: 0x0005, Mnemonic: "TIME_REMAINING", ValueTypeSig: "FLOAT32", Unit: "s", Description: "Estimated runtime remaining"},
	{Code: 0x0006, Mnemonic: "POWER_CONSUMPTION", ValueTypeSig: "FLOAT16", Unit: "W", Description: "Current total power draw"},
	{Code: 0x0007, Mnemonic: "ENERGY_CONSUMED", ValueTypeSig: "FLOAT32", Unit: "J", Description: "Total energy consumed this session"},
	{Code: 0x0008, Mnemonic: "CHARGING_STATUS", ValueTypeSig: "UINT8", Description: "0=discharging, 1=charging, 2=full, 3=fault"},
	{Code: 0x0009, Mnemonic: "POWER_SOURCE", ValueTypeSig: "UINT8", Description: "0=battery, 1=wired, 2=solar, 3=fuel_cell"},
	{Code: 0x0020, Mnemonic: "CPU_LOAD", ValueTypeSig: "FLOAT16", Unit: "%", Description: "CPU utilization 0-100%"},
	{Code: 0x0021, Mnemonic: "GPU_LOAD", ValueTypeSig: "FLOAT16", Unit: "%", Description: "GPU utilization 0-100%"},
	{Code: 0x0022, Mnemonic: "MEMORY_USED", ValueTypeSig: "UINT32", Unit: "KB", Description: "Memory in use"},
	{Code: 0x0023, Mnemonic: "MEMORY_TOTAL", ValueTypeSig: "UINT32", Unit: "KB", Description: "Total available memory"},
	{Code: 0x0024, Mnemonic: "STORAGE_USED", ValueTypeSig: "UINT32", Unit: "KB", Description: "Storage in use"},
	{Code: 0x0025, Mnemonic: "STORAGE_TOTAL", ValueTypeSig: "UINT32", Unit: "KB", Description: "Total available storage"},
	{Code: 0x0026, Mnemonic: "CPU_TEMP", ValueTypeSig: "FLOAT16", Unit: "K", Description: "CPU temperature"},
	{Code: 0x0027, Mnemonic: "GPU_TEMP", ValueTypeSig: "FLOAT16", Unit: "K", Description: "GPU temperature"},
	{Code: 0x0028, Mnemonic: "INFERENCE_RATE", ValueTypeSig: "FLOAT32", Unit: "Hz", Description: "AI model inference rate"},
	{Code: 0x0029, Mnemonic: "MODEL_ID", ValueTypeSig: "STRING", Description: "Active AI model identifier"},
	{Code: 0x0040, Mnemonic: "AILL_SNR", ValueTypeSig: "FLOAT16", Unit: "dB", Description: "Current AILL channel SNR"},
	{Code: 0x0041, Mnemonic: "AILL_BER", ValueTypeSig: "FLOAT32", Description: "Current AILL bit error rate"},
	{Code: 0x0042, Mnemonic: "AILL_THROUGHPUT", ValueTypeSig: "FLOAT32", Unit: "bps", Description: "Current effective data rate"},
	{Code: 0x0043, Mnemonic: "AILL_RETRANSMITS", ValueTypeSig: "UINT16", Description: "Retransmission count this session"},
	{Code: 0x0044, Mnemonic: "AILL_LATENCY", ValueTypeSig: "FLOAT16", Unit: "ms", Description: "Round-trip latency estimate"},
	{Code: 0x0045, Mnemonic: "WIFI_RSSI", ValueTypeSig: "INT8", Unit: "dBm", Description: "WiFi signal strength"},
	{Code: 0x0046, Mnemonic: "NETWORK_STATUS", ValueTypeSig: "UINT8", Description: "0=disconnected, 1=connected, 2=limited"},
	{Code: 0x0060, Mnemonic: "UPTIME", ValueTypeSig: "UINT32", Unit: "s", Description: "System uptime in seconds"},
	{Code: 0x0061, Mnemonic: "BOOT_COUNT", ValueTypeSig: "UINT16", Description: "Number of system boots"},
	{Code: 0x0062, Mnemonic: "ERROR_COUNT", ValueTypeSig: "UINT16", Description: "Cumulative error count"},
	{Code: 0x0063, Mnemonic: "LAST_ERROR", ValueTypeSig: "STRUCT{code,msg,ts}", Description: "Most recent error record"},
	{Code: 0x0064, Mnemonic: "HEALTH_STATUS", ValueTypeSig: "UINT8", Description: "0=nominal, 1=degraded, 2=critical, 3=emergency"},
	{Code: 0x0065, Mnemonic: "FIRMWARE_VERSION", ValueTypeSig: "STRING", Description: "Firmware/software version string"},
	{Code: 0x0066, Mnemonic: "HARDWARE_ID", ValueTypeSig: "STRING", Description: "Hardware model identifier"},
	{Code: 0x0067, Mnemonic: "CAPABILITIES_REPORT", ValueTypeSig: "STRUCT", Description: "Full capability self-report"},
	{Code: 0x0068, Mnemonic: "SELF_TEST_RESULT", ValueTypeSig: "STRUCT{pass,details}", Description: "Built-in self-test results"},
	{Code: 0x0069, Mnemonic: "MAINTENANCE_DUE", ValueTypeSig: "TIMESTAMP", Description: "Next scheduled maintenance time"},
	{Code: 0x006A, Mnemonic: "OPERATING_MODE", ValueTypeSig: "UINT8", Description: "0=idle, 1=active, 2=standby, 3=safe_mode, 4=shutdown"},
	{Code: 0x006B, Mnemonic: "ACTUATOR_STATUS", ValueTypeSig: "LIST<STRUCT{id,ok,temp}>", Description: "Per-actuator health"},
	{Code: 0x0080, Mnemonic: "THERMAL_MAP", ValueTypeSig: "LIST<STRUCT{zone,temp}>", Unit: "K", Description: "Temperature readings by zone"},
	{Code: 0x0081, Mnemonic: "HOT_SPOT", ValueTypeSig: "STRUCT{zone,temp,trend}", Description: "Thermal hot spot alert"},
	{Code: 0x0082, Mnemonic: "COOLING_STATUS", ValueTypeSig: "UINT8", Description: "0=passive, 1=fan_low, 2=fan_high, 3=liquid, 4=emergency_shutdown"},
	{Code: 0x0083, Mnemonic: "THERMAL_THROTTLE", ValueTypeSig: "BOOL", Description: "True if performance is thermally throttled"},
	{Code: 0x0084, Mnemonic: "AMBIENT_TEMP", ValueTypeSig: "FLOAT16", Unit: "K", Description: "External ambient temperature"},
	{Code: 0x0085, Mnemonic: "INTERNAL_TEMP", ValueTypeSig: "FLOAT16", Unit: "K", Description: "Internal chassis temperature"},
	{Code: 0x0086, Mnemonic: "MOTOR_TEMP", ValueTypeSig: "STRUCT{id,temp}", Unit: "K", Description: "Per-motor temperature reading"},
	{Code: 0x0087, Mnemonic: "HEATER_STATUS", ValueTypeSig: "STRUCT{id,on,power}", Description: "Heater element status"},
	{Code: 0x0098, Mnemonic: "MOTOR_CURRENT", ValueTypeSig: "STRUCT{id,amps}", Unit: "A", Description: "Per-motor current draw"},
	{Code: 0x0099, Mnemonic: "MOTOR_RPM", ValueTypeSig: "STRUCT{id,rpm}", Unit: "rpm", Description: "Per-motor rotational speed"},
	{Code: 0x009A, Mnemonic: "MOTOR_POSITION", ValueTypeSig: "STRUCT{id,angle}", Unit: "rad", Description: "Per-motor shaft position"},
	{Code: 0x009B, Mnemonic: "MOTOR_FAULT", ValueTypeSig: "STRUCT{id,code}", Description: "Motor fault: 0=ok, 1=overcurrent, 2=overheat, 3=stall, 4=encoder_fail, 5=comm_fail"},
	{Code: 0x009C, Mnemonic: "SERVO_POSITION", ValueTypeSig: "STRUCT{id,actual,target}", Unit: "rad", Description: "Servo actual vs target position"},
	{Code: 0x009D, Mnemonic: "SERVO_LOAD", ValueTypeSig: "STRUCT{id,load_pct}", Unit: "%", Description: "Servo load as percent of max"},
	{Code: 0x009E, Mnemonic: "HYDRAULIC_PRESSURE", ValueTypeSig: "STRUCT{id,pressure}", Unit: "Pa", Description: "Hydraulic system pressure"},
	{Code: 0x009F, Mnemonic: "PNEUMATIC_PRESSURE", ValueTypeSig: "STRUCT{id,pressure}", Unit: "Pa", Description: "Pneumatic system pressure"},
	{Code: 0x00A0, Mnemonic: "BRAKE_STATUS", ValueTypeSig: "STRUCT{id,engaged}", Description: "Brake engagement status"},
	{Code: 0x00A1, Mnemonic: "CLUTCH_STATUS", ValueTypeSig: "STRUCT{id,engaged}", Description: "Clutch engagement status"},
	{Code: 0x00A2, Mnemonic: "JOINT_TORQUE", ValueTypeSig: "STRUCT{id,torque}", Unit: "Nm", Description: "Measured joint torque"},
	{Code: 0x00A3, Mnemonic: "JOINT_BACKLASH", ValueTypeSig: "STRUCT{id,angle}", Unit: "rad", Description: "Measured joint backlash"},
	{Code: 0x00A4, Mnemonic: "WEAR_INDICATOR", ValueTypeSig: "STRUCT{component,pct}", Unit: "%", Description: "Component wear level percentage"},
	{Code: 0x00B0, Mnemonic: "PROCESS_LIST", ValueTypeSig: "LIST<STRUCT{pid,name,cpu,mem}>", Description: "Running processes"},
	{Code: 0x00B1, Mnemonic: "THREAD_COUNT", ValueTypeSig: "UINT16", Description: "Active thread count"},
	{Code: 0x00B2, Mnemonic: "QUEUE_DEPTH", ValueTypeSig: "STRUCT{name,depth}", Description: "Message queue occupancy"},
	{Code: 0x00B3, Mnemonic: "LATENCY_HIST", ValueTypeSig: "LIST<STRUCT{bucket_ms,count}>", Description: "Latency histogram for processing pipeline"},
	{Code: 0x00B4, Mnemonic: "MODEL_CONFIDENCE", ValueTypeSig: "FLOAT16", Description: "Current AI model output confidence"},
	{Code: 0x00B5, Mnemonic: "MODEL_LATENCY", ValueTypeSig: "FLOAT16", Unit: "ms", Description: "AI model inference latency"},
	{Code: 0x00B6, Mnemonic: "PERCEPTION_FPS", ValueTypeSig: "FLOAT16", Unit: "Hz", Description: "Perception pipeline frame rate"},
	{Code: 0x00B7, Mnemonic: "PLANNING_CYCLE", ValueTypeSig: "FLOAT16", Unit: "ms", Description: "Planning loop cycle time"},
	{Code: 0x00B8, Mnemonic: "CONTROL_CYCLE", ValueTypeSig: "FLOAT16", Unit: "ms", Description: "Control loop cycle time"},
	{Code: 0x00B9, Mnemonic: "WATCHDOG_STATUS", ValueTypeSig: "UINT8", Description: "0=ok, 1=warning, 2=tripped"},
	{Code: 0x00BA, Mnemonic: "LOG_ENTRY", ValueTypeSig: "STRUCT{level,source,msg}", Description: "Diagnostic log entry"},
	{Code: 0x00BB, Mnemonic: "LOG_LEVEL", ValueTypeSig: "UINT8", Description: "0=trace, 1=debug, 2=info, 3=warn, 4=error, 5=fatal"},
	{Code: 0x00BC, Mnemonic: "CRASH_REPORT", ValueTypeSig: "STRUCT{time,module,backtrace}", Description: "Software crash report"},
	{Code: 0x00BD, Mnemonic: "PARAM_VALUE", ValueTypeSig: "STRUCT{name,value}", Description: "Runtime configuration parameter"},
	{Code: 0x00BE, Mnemonic: "PARAM_SET", ValueTypeSig: "STRUCT{name,value}", Description: "Request to change runtime parameter"},
	{Code: 0x00BF, Mnemonic: "PARAM_ACK", ValueTypeSig: "STRUCT{name,ok}", Description: "Acknowledge parameter change"},
	{Code: 0x00D0, Mnemonic: "FLIGHT_HOURS", ValueTypeSig: "FLOAT32", Unit: "h", Description: "Total operational flight/run hours"},
	{Code: 0x00D1, Mnemonic: "CYCLE_COUNT", ValueTypeSig: "UINT32", Description: "Total motor/actuator power cycles"},
	{Code: 0x00D2, Mnemonic: "LAST_CALIBRATION", ValueTypeSig: "TIMESTAMP", Description: "Timestamp of last sensor calibration"},
	{Code: 0x00D3, Mnemonic: "CALIBRATION_DUE", ValueTypeSig: "TIMESTAMP", Description: "Next required calibration"},
	{Code: 0x00D4, Mnemonic: "REPLACEMENT_PART", ValueTypeSig: "STRUCT{part_id,urgency}", Description: "Part approaching end of life"},
	{Code: 0x00D5, Mnemonic: "FLEET_ID", ValueTypeSig: "STRING", Description: "Fleet assignment identifier"},
	{Code: 0x00D6, Mnemonic: "DEPLOYMENT_ID", ValueTypeSig: "STRING", Description: "Current deployment/mission identifier"},
	{Code: 0x00D7, Mnemonic: "OTA_STATUS", ValueTypeSig: "UINT8", Description: "Over-the-air update: 0=none, 1=available, 2=downloading, 3=ready, 4=applying, 5=failed"},
	{Code: 0x00D8, Mnemonic: "OTA_VERSION", ValueTypeSig: "STRING", Description: "Available OTA update version string"},
	{Code: 0x00D9, Mnemonic: "STORAGE_HEALTH", ValueTypeSig: "UINT8", Unit: "%", Description: "Storage medium health (SSD wear level)"},
}

// PLAN-1: task planning and goal management (67 entries)
var planEntries = []DomainEntry{
	{Code: 0x0000, Mnemonic: "TASK", ValueTypeSig: "STRUCT{id,type,params}", Description: "Task definition"},
	{Code: 0x0001, Mnemonic: "TASK_ID", ValueTypeSig: "UINT32", Description: "Unique task identifier"},
	{Code: 0x0002, Mnemonic: "TASK_STATUS", ValueTypeSig: "UINT8", Description: "0=pending, 1=active, 2=complete, 3=failed, 4=cancelled"},
	{Code: 0x0003, Mnemonic: "TASK_PRIORITY", ValueTypeSig: "UINT8", Description: "Task priority 0-7"},
	{Code: 0x0004, Mnemonic: "TASK_DEADLINE", ValueTypeSig: "TIMESTAMP", Description: "Task completion deadline"},
	{Code: 0x0005, Mnemonic: "TASK_PROGRESS", ValueTypeSig: "FLOAT16", Unit: "%", Description: "Completion percentage 0-100%"},
	{Code: 0x0006, Mnemonic: "SUBTASK", ValueTypeSig: "STRUCT{id,parent_id}", Description: "Subtask with parent reference"},
	{Code: 0x0007, Mnemonic: "TASK_DEPENDENCY", ValueTypeSig: "STRUCT{task_id,dep_id}", Description: "Task A depends on task B"},
	{Code: 0x0008, Mnemonic: "GOAL", ValueTypeSig: "STRUCT{id,condition}", Description: "Goal as a boolean condition"},
	{Code: 0x0009, Mnemonic: "GOAL_STATUS", ValueTypeSig: "UINT8", Description: "0=unachieved, 1=achieved, 2=impossible"},
	{Code: 0x000A, Mnemonic: "PLAN", ValueTypeSig: "LIST<TASK>", Description: "Ordered plan (sequence of tasks)"},
	{Code: 0x000B, Mnemonic: "PLAN_COST", ValueTypeSig: "FLOAT32", Description: "Estimated total plan cost"},
	{Code: 0x000C, Mnemonic: "PLAN_DURATION", ValueTypeSig: "FLOAT32", Unit: "s", Description: "Estimated total plan duration"},
	{Code: 0x000D, Mnemonic: "ALLOCATE_TASK", ValueTypeSig: "STRUCT{task_id,agent_id}", Description: "Assign task to agent"},
	{Code: 0x000E, Mnemonic: "RELEASE_TASK", ValueTypeSig: "UINT32", Description: "Unassign/release a task"},
	{Code: 0x000F, Mnemonic: "REPLAN_REQUEST", ValueTypeSig: "STRUCT{reason}", Description: "Request plan regeneration"},
	{Code: 0x0010, Mnemonic: "RESOURCE", ValueTypeSig: "STRUCT{type,amount}", Description: "Resource requirement or availability"},
	{Code: 0x0011, Mnemonic: "RESOURCE_CONFLICT", ValueTypeSig: "STRUCT{res,agents}", Description: "Resource contention report"},
	{Code: 0x0012, Mnemonic: "AUCTION_BID", ValueTypeSig: "STRUCT{task_id,cost}", Description: "Bid on a task in task auction"},
	{Code: 0x0013, Mnemonic: "AUCTION_AWARD", ValueTypeSig: "STRUCT{task_id,agent_id}", Description: "Award task to winning bidder"},
	{Code: 0x0020, Mnemonic: "OFFER", ValueTypeSig: "STRUCT{id,terms}", Description: "Offer terms for negotiation"},
	{Code: 0x0021, Mnemonic: "COUNTER_OFFER", ValueTypeSig: "STRUCT{orig_id,new_terms}", Description: "Counter-proposal to an offer"},
	{Code: 0x0022, Mnemonic: "ACCEPT_OFFER", ValueTypeSig: "STRUCT{offer_id}", Description: "Accept a specific offer"},
	{Code: 0x0023, Mnemonic: "REJECT_OFFER", ValueTypeSig: "STRUCT{offer_id,reason}", Description: "Reject an offer with reason"},
	{Code: 0x0024, Mnemonic: "COMMITMENT", ValueTypeSig: "STRUCT{task_id,agent,deadline}", Description: "Binding commitment to complete task"},
	{Code: 0x0025, Mnemonic: "COMMITMENT_CANCEL", ValueTypeSig: "STRUCT{commit_id,reason}", Description: "Cancel a commitment (with penalty if applicable)"},
	{Code: 0x0026, Mnemonic: "PROMISE_DELIVERY", ValueTypeSig: "STRUCT{what,when,where}", Description: "Promise to deliver result at time and place"},
	{Code: 0x0027, Mnemonic: "CAPABILITY_QUERY", ValueTypeSig: "STRUCT{task_type}", Description: "Ask what agents can perform task type"},
	{Code: 0x0028, Mnemonic: "CAPABILITY_RESPONSE", ValueTypeSig: "STRUCT{agent,can,cost}", Description: "Response: can perform, estimated cost"},
	{Code: 0x0029, Mnemonic: "VOTE_REQUEST", ValueTypeSig: "STRUCT{proposal_id,options}", Description: "Request vote on proposal"},
	{Code: 0x002A, Mnemonic: "VOTE_CAST", ValueTypeSig: "STRUCT{proposal_id,choice}", Description: "Cast vote on proposal"},
	{Code: 0x002B, Mnemonic: "VOTE_RESULT", ValueTypeSig: "STRUCT{proposal_id,outcome}", Description: "Announce voting result"},
	{Code: 0x002C, Mnemonic: "CONSENSUS_REACHED", ValueTypeSig: "STRUCT{topic,value}", Description: "Group consensus reached on topic"},
	{Code: 0x002D, Mnemonic: "ARBITRATION_REQ", ValueTypeSig: "STRUCT{dispute,parties}", Description: "Request third-party arbitration"},
	{Code: 0x0040, Mnemonic: "TIME_WINDOW", ValueTypeSig: "STRUCT{earliest,latest}", Description: "Acceptable time window for action"},
	{Code: 0x0041, Mnemonic: "SCHEDULE", ValueTypeSig: "LIST<STRUCT{task,start,end}>", Description: "Scheduled sequence of tasks with times"},
	{Code: 0x0042, Mnemonic: "SCHEDULE_CONFLICT", ValueTypeSig: "STRUCT{task_a,task_b,overlap}", Description: "Two tasks conflict in time"},
	{Code: 0x0043, Mnemonic: "MILESTONE", ValueTypeSig: "STRUCT{id,condition,deadline}", Description: "Named checkpoint in plan"},
	{Code: 0x0044, Mnemonic: "MILESTONE_REACHED", ValueTypeSig: "STRUCT{id,actual_time}", Description: "Report milestone completion"},
	{Code: 0x0045, Mnemonic: "CRITICAL_PATH", ValueTypeSig: "LIST<TASK_ID>", Description: "Tasks on the critical path (zero slack)"},
	{Code: 0x0046, Mnemonic: "SLACK_TIME", ValueTypeSig: "STRUCT{task_id,slack}", Unit: "s", Description: "Available slack time for task"},
	{Code: 0x0047, Mnemonic: "TEMPORAL_CONSTRAINT", ValueTypeSig: "STRUCT{before,after,gap}", Description: "Task A must complete >= gap before task B"},
	{Code: 0x0048, Mnemonic: "RECURRING_TASK", ValueTypeSig: "STRUCT{task,interval,count}", Description: "Repeating task definition"},
	{Code: 0x0049, Mnemonic: "PREEMPT_TASK", ValueTypeSig: "STRUCT{running_id,new_id}", Description: "Interrupt current task for higher priority"},
	{Code: 0x004A, Mnemonic: "RESUME_TASK", ValueTypeSig: "STRUCT{task_id}", Description: "Resume a previously preempted task"},
	{Code: 0x0060, Mnemonic: "INTENT", ValueTypeSig: "STRUCT{action,target,purpose}", Description: "Declared intent (transparent planning)"},
	{Code: 0x0061, Mnemonic: "INTENT_CONFLICT", ValueTypeSig: "STRUCT{agent_a,agent_b,type}", Description: "Detected intent conflict between agents"},
	{Code: 0x0062, Mnemonic: "YIELD", ValueTypeSig: "STRUCT{to_agent,context}", Description: "Yield priority to another agent"},
	{Code: 0x0063, Mnemonic: "REQUEST_YIELD", ValueTypeSig: "STRUCT{from_agent,reason}", Description: "Ask another agent to yield"},
	{Code: 0x0064, Mnemonic: "BEHAVIOR_MODE", ValueTypeSig: "UINT8", Description: "0=normal, 1=cautious, 2=aggressive, 3=energy_saving, 4=exploration, 5=return_to_base"},
	{Code: 0x0065, Mnemonic: "RISK_TOLERANCE", ValueTypeSig: "FLOAT16", Description: "Risk acceptance level 0.0 (risk-averse) to 1.0 (risk-seeking)"},
	{Code: 0x0066, Mnemonic: "EXPLANATION", ValueTypeSig: "STRUCT{decision,factors}", Description: "Explain reasoning behind a decision"},
	{Code: 0x0067, Mnemonic: "UNCERTAINTY_MAP", ValueTypeSig: "STRUCT{region,entropy}", Description: "Spatial uncertainty for exploration planning"},
	{Code: 0x0068, Mnemonic: "INFORMATION_GAIN", ValueTypeSig: "STRUCT{action,expected_bits}", Description: "Expected information gain from action"},
	{Code: 0x0069, Mnemonic: "UTILITY", ValueTypeSig: "STRUCT{outcome,value}", Description: "Utility value for an outcome"},
	{Code: 0x006A, Mnemonic: "CONSTRAINT", ValueTypeSig: "STRUCT{type,params}", Description: "Planning constraint (spatial, temporal, resource)"},
	{Code: 0x006B, Mnemonic: "CONSTRAINT_VIOLATED", ValueTypeSig: "STRUCT{constraint_id,severity}", Description: "Report constraint violation"},
	{Code: 0x0080, Mnemonic: "STATE_MACHINE", ValueTypeSig: "STRUCT{id,states,transitions}", Description: "State machine definition"},
	{Code: 0x0081, Mnemonic: "CURRENT_STATE", ValueTypeSig: "STRUCT{machine_id,state}", Description: "Current state in a state machine"},
	{Code: 0x0082, Mnemonic: "STATE_TRANSITION", ValueTypeSig: "STRUCT{from,to,trigger}", Description: "State transition event"},
	{Code: 0x0083, Mnemonic: "WORKFLOW", ValueTypeSig: "STRUCT{id,steps}", Description: "Multi-step workflow definition"},
	{Code: 0x0084, Mnemonic: "WORKFLOW_STEP", ValueTypeSig: "STRUCT{id,action,next}", Description: "Single step in a workflow"},
	{Code: 0x0085, Mnemonic: "WORKFLOW_STATUS", ValueTypeSig: "STRUCT{wf_id,step_id,pct}", Description: "Current workflow progress"},
	{Code: 0x0086, Mnemonic: "CONDITIONAL_STEP", ValueTypeSig: "STRUCT{condition,if_true,if_false}", Description: "Branching step in workflow"},
	{Code: 0x0087, Mnemonic: "PARALLEL_STEPS", ValueTypeSig: "LIST<STRUCT{step_id,agent}>", Description: "Steps to execute in parallel"},
	{Code: 0x0088, Mnemonic: "SYNC_BARRIER", ValueTypeSig: "STRUCT{barrier_id,agents}", Description: "All agents must reach barrier before proceeding"},
	{Code: 0x0089, Mnemonic: "BARRIER_REACHED", ValueTypeSig: "STRUCT{barrier_id,agent}", Description: "Agent arrived at sync barrier"},
}

// SAFETY-1: safety, emergency, and regulatory compliance (63 entries)
var safetyEntries = []DomainEntry{
	{Code: 0x0000, Mnemonic: "EMERGENCY_LEVEL", ValueTypeSig: "UINT8", Description: "0=clear, 1=caution, 2=warning, 3=danger, 4=critical, 5=catastrophic"},
	{Code: 0x0001, Mnemonic: "EMERGENCY_TYPE", ValueTypeSig: "UINT8", Description: "0=collision, 1=fire, 2=flood, 3=structural, 4=chemical, 5=electrical, 6=medical, 7=security, 8=loss_of_control"},
	{Code: 0x0002, Mnemonic: "EMERGENCY_DECLARE", ValueTypeSig: "STRUCT{level,type,pos,desc}", Description: "Declare emergency with location and description"},
	{Code: 0x0003, Mnemonic: "EMERGENCY_CLEAR", ValueTypeSig: "STRUCT{type}", Description: "Declare emergency condition resolved"},
	{Code: 0x0004, Mnemonic: "MAYDAY", ValueTypeSig: "STRUCT{agent,pos,nature}", Description: "Distress call: agent in immediate danger"},
	{Code: 0x0005, Mnemonic: "PAN_PAN", ValueTypeSig: "STRUCT{agent,pos,nature}", Description: "Urgency call: agent needs assistance"},
	{Code: 0x0006, Mnemonic: "ALL_STOP", ValueTypeSig: "NONE", Description: "Immediate halt command to all agents"},
	{Code: 0x0007, Mnemonic: "RESUME_OPERATIONS", ValueTypeSig: "NONE", Description: "Resume normal operations after all-stop"},
	{Code: 0x0008, Mnemonic: "EVACUATION_ORDER", ValueTypeSig: "STRUCT{zone,rally_point}", Description: "Order to evacuate zone to rally point"},
	{Code: 0x0009, Mnemonic: "SHELTER_IN_PLACE", ValueTypeSig: "STRUCT{zone,duration}", Description: "Order to hold position and wait"},
	{Code: 0x000A, Mnemonic: "DISTRESS_BEACON", ValueTypeSig: "STRUCT{uuid,pos,ts}", Description: "Periodic emergency beacon until rescued/resolved"},
	{Code: 0x0020, Mnemonic: "HUMAN_DETECTED", ValueTypeSig: "STRUCT{pos,distance,conf}", Description: "Human presence detected near agent"},
	{Code: 0x0021, Mnemonic: "HUMAN_PROXIMITY", ValueTypeSig: "FLOAT32", Unit: "m", Description: "Distance to nearest detected human"},
	{Code: 0x0022, Mnemonic: "HUMAN_IN_WORKSPACE", ValueTypeSig: "BOOL", Description: "Human has entered robot workspace"},
	{Code: 0x0023, Mnemonic: "SAFETY_ZONE", ValueTypeSig: "UINT8", Description: "0=safe (>2m), 1=warning (1-2m), 2=protective (<1m), 3=danger (<0.5m)"},
	{Code: 0x0024, Mnemonic: "SPEED_LIMIT", ValueTypeSig: "FLOAT32", Unit: "m/s", Description: "Current speed limit for human safety"},
	{Code: 0x0025, Mnemonic: "FORCE_LIMIT", ValueTypeSig: "FLOAT32", Unit: "N", Description: "Current force limit for human safety"},
	{Code: 0x0026, Mnemonic: "PROTECTIVE_STOP", ValueTypeSig: "STRUCT{reason,pos}", Description: "Safety-rated protective stop engaged"},
	{Code: 0x0027, Mnemonic: "SAFETY_STOP_CLEAR", ValueTypeSig: "NONE", Description: "Protective stop condition resolved"},
	{Code: 0x0028, Mnemonic: "PERSON_TRACKING", ValueTypeSig: "LIST<STRUCT{id,pos,vel}>", Description: "All tracked persons with trajectories"},
	{Code: 0x0029, Mnemonic: "PERSON_PREDICTED", ValueTypeSig: "STRUCT{id,pred_pos,horizon}", Description: "Predicted person position at time horizon"},
	{Code: 0x002A, Mnemonic: "COLLABORATIVE_MODE", ValueTypeSig: "UINT8", Description: "0=separated, 1=coexistence, 2=cooperation, 3=collaboration (ISO 10218)"},
	{Code: 0x002B, Mnemonic: "SAFETY_RATED_SPEED", ValueTypeSig: "FLOAT32", Unit: "m/s", Description: "Safety-rated monitored speed (ISO/TS 15066)"},
	{Code: 0x002C, Mnemonic: "POWER_FORCE_LIMIT", ValueTypeSig: "STRUCT{body_part,max_force}", Unit: "N", Description: "ISO/TS 15066 per-body-part force limits"},
	{Code: 0x0040, Mnemonic: "FAULT_DETECTED", ValueTypeSig: "STRUCT{system,code,severity}", Description: "System fault detected"},
	{Code: 0x0041, Mnemonic: "FAULT_CLEARED", ValueTypeSig: "STRUCT{system,code}", Description: "Fault condition resolved"},
	{Code: 0x0042, Mnemonic: "FAILSAFE_ACTIVE", ValueTypeSig: "STRUCT{type}", Description: "Failsafe mode engaged: 0=soft_stop, 1=safe_park, 2=return_home, 3=power_off, 4=controlled_descent"},
	{Code: 0x0043, Mnemonic: "REDUNDANCY_STATUS", ValueTypeSig: "STRUCT{system,primary,backup}", Description: "Redundant system health"},
	{Code: 0x0044, Mnemonic: "WATCHDOG_TRIP", ValueTypeSig: "STRUCT{module,last_seen}", Description: "Watchdog timer expired for module"},
	{Code: 0x0045, Mnemonic: "COMM_LOST", ValueTypeSig: "STRUCT{agent,duration}", Description: "Communication lost with agent"},
	{Code: 0x0046, Mnemonic: "COMM_RESTORED", ValueTypeSig: "STRUCT{agent}", Description: "Communication restored with agent"},
	{Code: 0x0047, Mnemonic: "GPS_LOST", ValueTypeSig: "NONE", Description: "GPS signal lost"},
	{Code: 0x0048, Mnemonic: "GPS_RESTORED", ValueTypeSig: "STRUCT{accuracy}", Unit: "m", Description: "GPS signal restored with accuracy"},
	{Code: 0x0049, Mnemonic: "SENSOR_FAULT", ValueTypeSig: "STRUCT{sensor_id,type}", Description: "Sensor fault: 0=degraded, 1=failed, 2=inconsistent, 3=stuck"},
	{Code: 0x004A, Mnemonic: "ACTUATOR_FAULT", ValueTypeSig: "STRUCT{actuator_id,type}", Description: "Actuator fault: 0=degraded, 1=locked, 2=runaway, 3=disconnected"},
	{Code: 0x004B, Mnemonic: "POWER_FAULT", ValueTypeSig: "STRUCT{type,details}", Description: "Power system fault: 0=brownout, 1=overcurrent, 2=cell_imbalance, 3=thermal_runaway"},
	{Code: 0x004C, Mnemonic: "ESTOP_PRESSED", ValueTypeSig: "STRUCT{agent,source}", Description: "Emergency stop button activated"},
	{Code: 0x004D, Mnemonic: "ESTOP_RELEASED", ValueTypeSig: "STRUCT{agent}", Description: "Emergency stop button released"},
	{Code: 0x0060, Mnemonic: "GEOFENCE_BREACH", ValueTypeSig: "STRUCT{fence_id,pos}", Description: "Agent has breached geofence boundary"},
	{Code: 0x0061, Mnemonic: "ALTITUDE_LIMIT", ValueTypeSig: "FLOAT32", Unit: "m", Description: "Maximum permitted altitude"},
	{Code: 0x0062, Mnemonic: "ALTITUDE_BREACH", ValueTypeSig: "STRUCT{current,limit}", Unit: "m", Description: "Agent exceeds altitude limit"},
	{Code: 0x0063, Mnemonic: "SPEED_BREACH", ValueTypeSig: "STRUCT{current,limit}", Unit: "m/s", Description: "Agent exceeds speed limit"},
	{Code: 0x0064, Mnemonic: "RESTRICTED_ZONE", ValueTypeSig: "STRUCT{id,polygon,floor,ceiling}", Description: "Defined restricted zone"},
	{Code: 0x0065, Mnemonic: "ZONE_ENTERED", ValueTypeSig: "STRUCT{zone_id}", Description: "Agent entered restricted zone"},
	{Code: 0x0066, Mnemonic: "ZONE_EXITED", ValueTypeSig: "STRUCT{zone_id}", Description: "Agent exited restricted zone"},
	{Code: 0x0067, Mnemonic: "FLIGHT_AUTH", ValueTypeSig: "STRUCT{area,start,end,auth_id}", Description: "Regulatory flight authorization"},
	{Code: 0x0068, Mnemonic: "REMOTE_ID", ValueTypeSig: "STRUCT{uuid,pos,alt,vel,pilot_pos}", Description: "Remote identification broadcast (FAA compliance)"},
	{Code: 0x0069, Mnemonic: "NOISE_LIMIT", ValueTypeSig: "FLOAT16", Unit: "dB_SPL", Description: "Maximum permitted noise level"},
	{Code: 0x006A, Mnemonic: "OPERATING_HOURS", ValueTypeSig: "STRUCT{start,end}", Description: "Permitted operating time window"},
	{Code: 0x006B, Mnemonic: "WEATHER_LIMIT", ValueTypeSig: "STRUCT{max_wind,min_vis,max_rain}", Description: "Weather operating limits"},
	{Code: 0x006C, Mnemonic: "WEATHER_ABORT", ValueTypeSig: "STRUCT{condition}", Description: "Weather exceeds operating limits"},
	{Code: 0x0080, Mnemonic: "SAFETY_SCORE", ValueTypeSig: "FLOAT16", Description: "Overall safety score 0.0-1.0"},
	{Code: 0x0081, Mnemonic: "RISK_ASSESSMENT", ValueTypeSig: "STRUCT{hazard,probability,severity}", Description: "Risk assessment for hazard"},
	{Code: 0x0082, Mnemonic: "MITIGATION_ACTIVE", ValueTypeSig: "STRUCT{risk_id,measure}", Description: "Active risk mitigation measure"},
	{Code: 0x0083, Mnemonic: "SAFETY_LOG", ValueTypeSig: "STRUCT{event,ts,details}", Description: "Safety event log entry"},
	{Code: 0x0084, Mnemonic: "NEAR_MISS", ValueTypeSig: "STRUCT{type,agents,min_dist}", Description: "Near-miss incident report"},
	{Code: 0x0085, Mnemonic: "INCIDENT_REPORT", ValueTypeSig: "STRUCT{type,agents,pos,ts,desc}", Description: "Post-incident report"},
	{Code: 0x0086, Mnemonic: "SAFE_LANDING_SITES", ValueTypeSig: "LIST<STRUCT{pos,quality}>", Description: "Available emergency landing sites"},
	{Code: 0x0087, Mnemonic: "ESCAPE_ROUTE", ValueTypeSig: "LIST<POSITION_3D>", Description: "Planned escape route from current position"},
	{Code: 0x0088, Mnemonic: "BATTERY_RESERVE", ValueTypeSig: "FLOAT16", Unit: "%", Description: "Battery reserved for safe return"},
	{Code: 0x0089, Mnemonic: "POINT_OF_NO_RETURN", ValueTypeSig: "STRUCT{pos,time}", Description: "Must-decide point for safe return"},
	{Code: 0x008A, Mnemonic: "CONTINGENCY_PLAN", ValueTypeSig: "STRUCT{trigger,action}", Description: "If-trigger-then-action safety plan"},
	{Code: 0x008B, Mnemonic: "BLACK_BOX_MARK", ValueTypeSig: "STRUCT{event,ts}", Description: "Mark event in flight recorder / black box"},
}
